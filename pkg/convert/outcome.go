// pkg/convert/outcome.go
package convert

import "fmt"

// Status classifies the result of converting one raw legacy value.
// Conversion is total: a cell either converts or becomes null, it never
// raises, so row insertion logic downstream never branches on error types.
type Status int

const (
	// StatusConverted means the raw value was recognized and converted
	StatusConverted Status = iota
	// StatusNullEmpty means the raw value was null, empty, or a known
	// invalid sentinel, and the cell becomes null
	StatusNullEmpty
	// StatusNullUnrecognized means the raw value did not match any known
	// encoding for the target type; the cell becomes null and the value is
	// logged for manual review
	StatusNullUnrecognized
)

// String returns a string representation of the status
func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusNullEmpty:
		return "null_empty"
	case StatusNullUnrecognized:
		return "null_unrecognized"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Outcome is the per-cell conversion result. Value is nil unless Status is
// StatusConverted.
type Outcome struct {
	Value  interface{}
	Status Status
}

// Converted wraps a successfully converted value
func Converted(value interface{}) Outcome {
	return Outcome{Value: value, Status: StatusConverted}
}

// NullEmpty marks a cell nulled because the input was empty or a sentinel
func NullEmpty() Outcome {
	return Outcome{Status: StatusNullEmpty}
}

// NullUnrecognized marks a cell nulled because the input was unparseable
func NullUnrecognized() Outcome {
	return Outcome{Status: StatusNullUnrecognized}
}

// FieldRef identifies the source cell being converted, for logging and for
// the conversion_issues audit trail.
type FieldRef struct {
	Table  string
	Column string
	RowID  string
}
