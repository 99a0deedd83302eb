// pkg/transfer/verifier.go
package transfer

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

// Verifier compares legacy and destination row counts after a transfer.
// Parity plus operator spot checks is the acceptance test for a run;
// mismatches are reported, not fatal.
type Verifier struct {
	legacy   *connector.SQLiteConnector
	postgres connector.DatabaseConnector
	logger   *zap.Logger
}

// NewVerifier creates a new verifier
func NewVerifier(legacy *connector.SQLiteConnector, postgres connector.DatabaseConnector) *Verifier {
	return &Verifier{
		legacy:   legacy,
		postgres: postgres,
		logger:   zap.L().Named("verifier"),
	}
}

// VerifyTable compares row counts for one manifest table
func (v *Verifier) VerifyTable(ctx context.Context, table *model.TableSpec) (ParityResult, error) {
	result := ParityResult{
		LegacyTable: table.Legacy,
		Table:       table.Name,
	}

	sourceCount, err := connector.CountRows(ctx, v.legacy, fmt.Sprintf("%q", table.Legacy))
	if err != nil {
		return result, fmt.Errorf("failed to count legacy rows: %w", err)
	}
	result.SourceCount = sourceCount

	targetCount, err := connector.CountRows(ctx, v.postgres, table.Name)
	if err != nil {
		return result, fmt.Errorf("failed to count destination rows: %w", err)
	}
	result.TargetCount = targetCount

	if !result.Match() {
		v.logger.Warn("Row count mismatch",
			zap.String("table", table.Name),
			zap.Int64("source", sourceCount),
			zap.Int64("target", targetCount))
	}

	return result, nil
}

// VerifyAll compares row counts for every manifest table
func (v *Verifier) VerifyAll(ctx context.Context, manifest *model.Manifest) ([]ParityResult, error) {
	results := make([]ParityResult, 0, len(manifest.Tables))

	for i := range manifest.Tables {
		result, err := v.VerifyTable(ctx, &manifest.Tables[i])
		if err != nil {
			return results, fmt.Errorf("verification of %s failed: %w", manifest.Tables[i].Name, err)
		}
		results = append(results, result)
	}

	return results, nil
}
