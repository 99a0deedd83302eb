// pkg/transfer/result.go
package transfer

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// TableResult is the outcome of transferring one legacy table
type TableResult struct {
	LegacyTable           string
	Table                 string
	RowsRead              int64
	RowsInserted          int64
	CellsConverted        int64
	CellsNullEmpty        int64
	CellsNullUnrecognized int64
	StartTime             time.Time
	Duration              time.Duration
}

// ParityResult is the post-transfer row-count comparison for one table
type ParityResult struct {
	LegacyTable string
	Table       string
	SourceCount int64
	TargetCount int64
}

// Match reports whether source and destination row counts agree
func (p ParityResult) Match() bool {
	return p.SourceCount == p.TargetCount
}

// RunSummary is the final report of a migration run: per-table transfer
// results, conversion-failure tallies, and row-count parity.
type RunSummary struct {
	RunID     string
	Tables    []TableResult
	Parity    []ParityResult
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// NewRunSummary initializes a summary for a run
func NewRunSummary(runID string) *RunSummary {
	return &RunSummary{
		RunID:     runID,
		StartTime: time.Now(),
	}
}

// Complete marks the run finished and records its duration
func (s *RunSummary) Complete() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

// AddTableResult appends one table's outcome to the summary
func (s *RunSummary) AddTableResult(result TableResult) {
	s.Tables = append(s.Tables, result)
}

// TotalRows returns the total rows inserted across all tables
func (s *RunSummary) TotalRows() int64 {
	var total int64
	for _, t := range s.Tables {
		total += t.RowsInserted
	}
	return total
}

// TotalUnrecognized returns the total cells nulled for unrecognized input
func (s *RunSummary) TotalUnrecognized() int64 {
	var total int64
	for _, t := range s.Tables {
		total += t.CellsNullUnrecognized
	}
	return total
}

// ParityOK reports whether every table's row counts matched
func (s *RunSummary) ParityOK() bool {
	for _, p := range s.Parity {
		if !p.Match() {
			return false
		}
	}
	return true
}

// Render writes the human-readable run report: per-table rows and tallies,
// then row-count parity for manual comparison against the source.
func (s *RunSummary) Render(w io.Writer) error {
	fmt.Fprintf(w, "Migration run %s (%s)\n\n", s.RunID, s.Duration.Round(time.Millisecond))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TABLE\tROWS READ\tROWS INSERTED\tNULL (EMPTY)\tNULL (UNRECOGNIZED)\tDURATION")
	for _, t := range s.Tables {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\n",
			t.Table, t.RowsRead, t.RowsInserted,
			t.CellsNullEmpty, t.CellsNullUnrecognized,
			t.Duration.Round(time.Millisecond))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(s.Parity) > 0 {
		fmt.Fprintln(w, "\nRow-count parity:")
		tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "TABLE\tSOURCE\tDESTINATION\tMATCH")
		for _, p := range s.Parity {
			match := "ok"
			if !p.Match() {
				match = "MISMATCH"
			}
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", p.Table, p.SourceCount, p.TargetCount, match)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nTotal rows transferred: %d, cells nulled as unrecognized: %d\n",
		s.TotalRows(), s.TotalUnrecognized())

	return nil
}
