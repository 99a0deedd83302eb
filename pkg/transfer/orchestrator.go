// pkg/transfer/orchestrator.go
package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/convert"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

// Orchestrator moves every row of every legacy table into its normalized
// counterpart. Strictly sequential: tables transfer in dependency order
// because later tables reference primary keys inserted by earlier ones.
type Orchestrator struct {
	legacy    *connector.SQLiteConnector
	postgres  *connector.PostgresConnector
	manifest  *model.Manifest
	converter *convert.Converter
	recorder  *IssueRecorder
	verifier  *Verifier
	batchSize int
	runID     string
	logger    *zap.Logger
}

// NewOrchestrator creates an orchestrator for one migration run
func NewOrchestrator(
	legacy *connector.SQLiteConnector,
	postgres *connector.PostgresConnector,
	manifest *model.Manifest,
	batchSize int,
) *Orchestrator {
	runID := uuid.New().String()
	logger := zap.L().Named("transfer").With(zap.String("runID", runID))

	return &Orchestrator{
		legacy:    legacy,
		postgres:  postgres,
		manifest:  manifest,
		converter: convert.NewConverter(logger),
		recorder:  NewIssueRecorder(postgres, runID),
		verifier:  NewVerifier(legacy, postgres),
		batchSize: batchSize,
		runID:     runID,
		logger:    logger,
	}
}

// Run transfers every manifest table, then verifies row-count parity.
// Value-level conversion failures null cells and keep going; any error
// returned from here is structural and the run is over.
func (o *Orchestrator) Run(ctx context.Context) (*RunSummary, error) {
	if err := o.manifest.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	ordered, err := o.manifest.Ordered()
	if err != nil {
		return nil, fmt.Errorf("cannot order manifest tables: %w", err)
	}

	summary := NewRunSummary(o.runID)

	o.logger.Info("Starting transfer",
		zap.Int("tables", len(ordered)))

	for i := range ordered {
		result, err := o.transferTable(ctx, &ordered[i])
		if err != nil {
			return summary, fmt.Errorf("transfer of %s halted: %w", ordered[i].Name, err)
		}
		summary.AddTableResult(*result)
	}

	parity, err := o.verifier.VerifyAll(ctx, o.manifest)
	if err != nil {
		return summary, err
	}
	summary.Parity = parity

	summary.Complete()

	o.logger.Info("Transfer completed",
		zap.Int64("totalRows", summary.TotalRows()),
		zap.Int64("unrecognizedCells", summary.TotalUnrecognized()),
		zap.Bool("parityOK", summary.ParityOK()),
		zap.Duration("duration", summary.Duration))

	return summary, nil
}

// transferTable reads one legacy table in full, converts every declared
// column, and inserts the normalized rows preserving legacy primary keys.
func (o *Orchestrator) transferTable(ctx context.Context, table *model.TableSpec) (*TableResult, error) {
	result := &TableResult{
		LegacyTable: table.Legacy,
		Table:       table.Name,
		StartTime:   time.Now(),
	}

	o.logger.Info("Transferring table",
		zap.String("legacy", table.Legacy),
		zap.String("table", table.Name))

	exists, err := o.legacy.TableExists(ctx, table.Legacy)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("legacy table %s not found in export", table.Legacy)
	}

	rows, err := o.legacy.ReadAllRows(ctx, table.Legacy)
	if err != nil {
		return nil, err
	}
	result.RowsRead = int64(len(rows))

	var tally RowTally
	var issues []Issue
	valueRows := make([][]interface{}, 0, len(rows))

	for _, row := range rows {
		values, rowTally, rowIssues := ConvertRow(o.converter, table, row)
		valueRows = append(valueRows, values)
		tally.Add(rowTally)
		issues = append(issues, rowIssues...)
	}

	inserted, err := o.postgres.BatchInsert(ctx, table.Name, table.ColumnNames(), valueRows, o.batchSize)
	if err != nil {
		return nil, err
	}

	o.recorder.Record(ctx, issues)

	result.RowsInserted = inserted
	result.CellsConverted = tally.Converted
	result.CellsNullEmpty = tally.NullEmpty
	result.CellsNullUnrecognized = tally.NullUnrecognized
	result.Duration = time.Since(result.StartTime)

	o.logger.Info("Table transferred",
		zap.String("table", table.Name),
		zap.Int64("rowsRead", result.RowsRead),
		zap.Int64("rowsInserted", result.RowsInserted),
		zap.Int64("nullEmpty", result.CellsNullEmpty),
		zap.Int64("nullUnrecognized", result.CellsNullUnrecognized),
		zap.Duration("duration", result.Duration))

	return result, nil
}

// RunID returns the unique identifier for this migration run
func (o *Orchestrator) RunID() string {
	return o.runID
}
