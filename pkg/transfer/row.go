// pkg/transfer/row.go
package transfer

import (
	"github.com/sunbrite/shopmigrate/pkg/convert"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

// RowTally counts conversion outcomes across the cells of one row
type RowTally struct {
	Converted        int64
	NullEmpty        int64
	NullUnrecognized int64
}

// Add accumulates another tally
func (t *RowTally) Add(other RowTally) {
	t.Converted += other.Converted
	t.NullEmpty += other.NullEmpty
	t.NullUnrecognized += other.NullUnrecognized
}

// ConvertRow applies the table's column specs to one untyped legacy row and
// returns the destination values in manifest column order. A cell that fails
// conversion becomes nil and is reported as an issue; the row always
// survives — migration is total.
func ConvertRow(
	converter *convert.Converter,
	table *model.TableSpec,
	row map[string]interface{},
) ([]interface{}, RowTally, []Issue) {
	var tally RowTally
	var issues []Issue

	// The legacy primary key identifies the row in logs and the audit trail
	rowID := ""
	if pk := table.PrimaryKey(); pk != nil {
		rowID = convert.Raw(row[pk.Legacy])
	}

	values := make([]interface{}, len(table.Columns))
	for i, col := range table.Columns {
		ref := convert.FieldRef{Table: table.Legacy, Column: col.Legacy, RowID: rowID}
		outcome := converter.Convert(col.Kind, row[col.Legacy], ref)

		values[i] = outcome.Value

		switch outcome.Status {
		case convert.StatusConverted:
			tally.Converted++
		case convert.StatusNullEmpty:
			tally.NullEmpty++
		case convert.StatusNullUnrecognized:
			tally.NullUnrecognized++
			issues = append(issues, Issue{
				Table:  table.Legacy,
				Column: col.Legacy,
				RowID:  rowID,
				Raw:    convert.Raw(row[col.Legacy]),
				Reason: reasonFor(col.Kind),
			})
		}
	}

	return values, tally, issues
}
