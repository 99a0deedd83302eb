// pkg/audit/render.go
package audit

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Render writes the report as aligned tabular text for operator review
func (r *Report) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TABLE\tCOLUMN\tTARGET\tDISTINCT\tVALUE\tCOUNT\tFLAGS")

	for _, col := range r.Columns {
		for i, vc := range col.Top {
			table, column, target, distinct := "", "", "", ""
			if i == 0 {
				table = col.LegacyTable
				column = col.LegacyColumn
				target = col.TargetKind.String()
				distinct = fmt.Sprintf("%d", col.Distinct)
			}

			value := vc.Value
			if value == "" {
				value = "(empty)"
			}

			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
				table, column, target, distinct, value, vc.Count, strings.Join(vc.Flags, ","))
		}
	}

	return tw.Flush()
}

// FlaggedCount returns how many of the reported values carry at least one flag
func (r *Report) FlaggedCount() int {
	count := 0
	for _, col := range r.Columns {
		for _, vc := range col.Top {
			if len(vc.Flags) > 0 {
				count++
			}
		}
	}
	return count
}
