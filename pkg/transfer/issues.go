// pkg/transfer/issues.go
package transfer

import (
	"context"

	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

// Issue records one cell that was nulled because its raw value did not match
// any recognized encoding for its target type. Issues never abort anything;
// they exist so a human can audit the run afterwards.
type Issue struct {
	Table  string
	Column string
	RowID  string
	Raw    string
	Reason string
}

// reasonFor maps a target kind to the audit-trail reason string
func reasonFor(kind model.Kind) string {
	switch kind {
	case model.KindBoolean:
		return "unrecognized_boolean"
	case model.KindDate, model.KindDateTime:
		return "unrecognized_date"
	case model.KindInteger, model.KindDecimal:
		return "unconvertible_numeric"
	default:
		return "unrecognized_value"
	}
}

// IssueRecorder persists conversion issues into the destination's
// conversion_issues table, stamped with the run ID.
type IssueRecorder struct {
	postgres *connector.PostgresConnector
	runID    string
	logger   *zap.Logger
}

// NewIssueRecorder creates a recorder for one migration run
func NewIssueRecorder(postgres *connector.PostgresConnector, runID string) *IssueRecorder {
	return &IssueRecorder{
		postgres: postgres,
		runID:    runID,
		logger:   zap.L().Named("issues"),
	}
}

// Record batch-inserts issues into the audit trail. Recording failures are
// logged, never fatal: the audit trail must not be able to sink a migration
// that otherwise succeeded.
func (r *IssueRecorder) Record(ctx context.Context, issues []Issue) {
	if len(issues) == 0 {
		return
	}

	columns := []string{"run_id", "table_name", "column_name", "row_identifier", "raw_value", "reason"}
	valueRows := make([][]interface{}, len(issues))
	for i, issue := range issues {
		valueRows[i] = []interface{}{r.runID, issue.Table, issue.Column, issue.RowID, issue.Raw, issue.Reason}
	}

	if _, err := r.postgres.BatchInsert(ctx, "conversion_issues", columns, valueRows, 500); err != nil {
		r.logger.Warn("Failed to record conversion issues",
			zap.Int("count", len(issues)),
			zap.Error(err))
	}
}
