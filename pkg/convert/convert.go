// pkg/convert/convert.go
package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/model"
)

// Known invalid-date sentinels used by the legacy desktop database to mean
// "no date". They short-circuit to null before any parsing is attempted.
var invalidDateSentinels = map[string]bool{
	"0000-00-00": true,
	"00/00/00":   true,
	"00/00/0000": true,
}

// dateLayouts are tried in order after the generic parse, first match wins.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/06 15:04:05",
	"01/02/2006",
	"01/02/06",
	"2006-01-02T15:04:05",
}

var truthyTokens = map[string]bool{
	"1": true, "YES": true, "Y": true, "TRUE": true, "T": true,
}

var falsyTokens = map[string]bool{
	"0": true, "NO": true, "N": true, "FALSE": true, "F": true,
}

// Converter maps raw legacy values to normalized values for a declared
// target kind. It never returns an error for malformed input: unrecognized
// values become null and are logged with their source location so a human
// can audit after the run.
type Converter struct {
	logger *zap.Logger
}

// NewConverter creates a new Converter
func NewConverter(logger *zap.Logger) *Converter {
	return &Converter{logger: logger}
}

// Convert dispatches a raw value to the converter for the target kind.
// String columns are copied verbatim.
func (c *Converter) Convert(kind model.Kind, value interface{}, ref FieldRef) Outcome {
	raw, present := rawString(value)

	if kind == model.KindString {
		if !present {
			return NullEmpty()
		}
		return Converted(raw)
	}

	if !present || strings.TrimSpace(raw) == "" {
		return NullEmpty()
	}

	switch kind {
	case model.KindBoolean:
		return c.Boolean(raw, ref)
	case model.KindDate:
		return c.Date(raw, ref)
	case model.KindDateTime:
		return c.DateTime(raw, ref)
	case model.KindInteger:
		return c.Integer(raw, ref)
	case model.KindDecimal:
		return c.Decimal(raw, ref)
	default:
		return Converted(raw)
	}
}

// Boolean converts a legacy flag to a bool. The legacy tables disagree on
// encoding (1/0, Y/N, YES/NO), so the recognized vocabulary covers all of
// them; anything else is nulled rather than guessed.
func (c *Converter) Boolean(raw string, ref FieldRef) Outcome {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if token == "" {
		return NullEmpty()
	}

	if truthyTokens[token] {
		return Converted(true)
	}
	if falsyTokens[token] {
		return Converted(false)
	}

	c.logUnrecognized("unrecognized boolean", raw, ref)
	return NullUnrecognized()
}

// Date converts a legacy date string to a calendar date, truncating any
// time-of-day component.
func (c *Converter) Date(raw string, ref FieldRef) Outcome {
	outcome := c.DateTime(raw, ref)
	if outcome.Status != StatusConverted {
		return outcome
	}

	t := outcome.Value.(time.Time)
	return Converted(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// DateTime converts a legacy date string, preserving time-of-day when
// present. A generic parse is attempted first, then the explicit layout
// list; the first success wins.
func (c *Converter) DateTime(raw string, ref FieldRef) Outcome {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || invalidDateSentinels[trimmed] {
		return NullEmpty()
	}

	if t, err := dateparse.ParseIn(trimmed, time.UTC); err == nil {
		return Converted(t)
	}

	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, trimmed, time.UTC); err == nil {
			return Converted(t)
		}
	}

	c.logUnrecognized("unrecognized date", raw, ref)
	return NullUnrecognized()
}

// Integer converts a legacy numeric string to an int64. The value is parsed
// as floating-point first so encodings like "5.0" survive, then rounded.
func (c *Converter) Integer(raw string, ref FieldRef) Outcome {
	stripped := stripCurrency(raw)
	if stripped == "" {
		return NullEmpty()
	}

	f, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		c.logUnrecognized("unconvertible numeric", raw, ref)
		return NullUnrecognized()
	}

	return Converted(int64(math.Round(f)))
}

// Decimal converts a legacy numeric string, tolerating currency formatting
// like "$1,234.56", to a fixed-point value rounded to 2 places.
func (c *Converter) Decimal(raw string, ref FieldRef) Outcome {
	stripped := stripCurrency(raw)
	if stripped == "" {
		return NullEmpty()
	}

	f, err := strconv.ParseFloat(stripped, 64)
	if err != nil {
		c.logUnrecognized("unconvertible numeric", raw, ref)
		return NullUnrecognized()
	}

	return Converted(math.Round(f*100) / 100)
}

func (c *Converter) logUnrecognized(reason, raw string, ref FieldRef) {
	c.logger.Warn(reason,
		zap.String("table", ref.Table),
		zap.String("column", ref.Column),
		zap.String("row", ref.RowID),
		zap.String("raw", raw))
}

// stripCurrency removes the currency symbol and thousands separators the
// legacy data mixes into numeric columns
func stripCurrency(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	return strings.TrimSpace(s)
}

// Raw returns the string form of a raw legacy value, or "" if it was null.
// Used when recording rejected values in the conversion audit trail.
func Raw(value interface{}) string {
	s, _ := rawString(value)
	return s
}

// rawString coerces a database/sql value into a string, reporting whether a
// value was present at all. The legacy export surfaces everything as TEXT,
// but the driver may hand back []byte.
func rawString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		return string(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	default:
		// The export surfaces everything as TEXT; any other driver type is
		// formatted and handed to the converters like the string it should
		// have been.
		return fmt.Sprintf("%v", v), true
	}
}
