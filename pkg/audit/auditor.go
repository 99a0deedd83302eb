// pkg/audit/auditor.go
package audit

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

// Currency-formatted numerics and zeroed date sentinels are the two legacy
// encodings that most often hide in columns slated for type conversion.
var (
	currencyPattern    = regexp.MustCompile(`^\s*\$|,\d{3}`)
	invalidDatePattern = regexp.MustCompile(`^0{4}-0{2}-0{2}$|^0{2}/0{2}/0{2,4}$`)
)

// ValueCount is one distinct raw value and its frequency in a legacy column
type ValueCount struct {
	Value string
	Count int64
	Flags []string
}

// ColumnAudit is the distinct-value universe of one legacy column
type ColumnAudit struct {
	LegacyTable  string
	LegacyColumn string
	TargetKind   model.Kind
	Distinct     int64
	Top          []ValueCount
}

// Report is the full audit output, one entry per column slated for
// conversion. Transient: printed for human review, never persisted.
type Report struct {
	Columns []ColumnAudit
}

// Auditor scans the legacy export and reports the distinct raw values of
// every column the converters will have to handle. Purely observational; it
// issues only SELECTs and is safe to run repeatedly.
type Auditor struct {
	legacy   *connector.SQLiteConnector
	manifest *model.Manifest
	topN     int
	logger   *zap.Logger
}

// NewAuditor creates a new Auditor
func NewAuditor(legacy *connector.SQLiteConnector, manifest *model.Manifest, topN int) *Auditor {
	return &Auditor{
		legacy:   legacy,
		manifest: manifest,
		topN:     topN,
		logger:   zap.L().Named("audit"),
	}
}

// Run audits every converted column in the manifest
func (a *Auditor) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	for i := range a.manifest.Tables {
		table := &a.manifest.Tables[i]

		exists, err := a.legacy.TableExists(ctx, table.Legacy)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("legacy table %s not found in export", table.Legacy)
		}

		for _, col := range table.ConvertedColumns() {
			audit, err := a.auditColumn(ctx, table.Legacy, col)
			if err != nil {
				return nil, err
			}
			report.Columns = append(report.Columns, *audit)
		}
	}

	a.logger.Info("Audit complete",
		zap.Int("columns", len(report.Columns)))

	return report, nil
}

// auditColumn collects the top-N distinct values of one legacy column
func (a *Auditor) auditColumn(ctx context.Context, legacyTable string, col model.ColumnSpec) (*ColumnAudit, error) {
	audit := &ColumnAudit{
		LegacyTable:  legacyTable,
		LegacyColumn: col.Legacy,
		TargetKind:   col.Kind,
	}

	db := a.legacy.DBx()

	countQuery := fmt.Sprintf(`SELECT COUNT(DISTINCT %q) FROM %q`, col.Legacy, legacyTable)
	if err := db.GetContext(ctx, &audit.Distinct, countQuery); err != nil {
		return nil, fmt.Errorf("failed to count distinct values for %s.%s: %w", legacyTable, col.Legacy, err)
	}

	query := fmt.Sprintf(
		`SELECT COALESCE(%q, '') AS value, COUNT(*) AS n FROM %q GROUP BY %q ORDER BY n DESC, value LIMIT ?`,
		col.Legacy, legacyTable, col.Legacy)

	rows, err := db.QueryxContext(ctx, query, a.topN)
	if err != nil {
		return nil, fmt.Errorf("failed to audit %s.%s: %w", legacyTable, col.Legacy, err)
	}
	defer rows.Close()

	for rows.Next() {
		var vc ValueCount
		if err := rows.Scan(&vc.Value, &vc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan audit row for %s.%s: %w", legacyTable, col.Legacy, err)
		}
		vc.Flags = FlagValue(vc.Value, col.Kind)
		audit.Top = append(audit.Top, vc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit rows for %s.%s: %w", legacyTable, col.Legacy, err)
	}

	return audit, nil
}

// FlagValue marks raw values matching known-problematic legacy encodings so
// they stand out in the printed report.
func FlagValue(value string, kind model.Kind) []string {
	var flags []string
	trimmed := strings.TrimSpace(value)

	switch kind {
	case model.KindDate, model.KindDateTime:
		if invalidDatePattern.MatchString(trimmed) {
			flags = append(flags, "invalid-date-sentinel")
		}
	case model.KindInteger, model.KindDecimal:
		if currencyPattern.MatchString(trimmed) {
			flags = append(flags, "currency-formatted")
		}
	}

	if trimmed == "" {
		flags = append(flags, "empty")
	}

	return flags
}
