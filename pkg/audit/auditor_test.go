// pkg/audit/auditor_test.go
package audit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbrite/shopmigrate/pkg/config"
	"github.com/sunbrite/shopmigrate/pkg/connector"
	"github.com/sunbrite/shopmigrate/pkg/model"
)

func TestFlagValue(t *testing.T) {
	t.Run("invalid date sentinels", func(t *testing.T) {
		for _, raw := range []string{"0000-00-00", "00/00/00", "00/00/0000"} {
			assert.Contains(t, FlagValue(raw, model.KindDate), "invalid-date-sentinel", "raw=%q", raw)
			assert.Contains(t, FlagValue(raw, model.KindDateTime), "invalid-date-sentinel", "raw=%q", raw)
		}
	})

	t.Run("real dates are not flagged", func(t *testing.T) {
		assert.Empty(t, FlagValue("2024-01-15", model.KindDate))
		assert.Empty(t, FlagValue("01/15/24 14:30:00", model.KindDateTime))
	})

	t.Run("currency formatting", func(t *testing.T) {
		assert.Contains(t, FlagValue("$1,234.56", model.KindDecimal), "currency-formatted")
		assert.Contains(t, FlagValue("1,200", model.KindInteger), "currency-formatted")
		assert.Empty(t, FlagValue("1234.56", model.KindDecimal))
	})

	t.Run("empty values", func(t *testing.T) {
		assert.Contains(t, FlagValue("", model.KindBoolean), "empty")
		assert.Contains(t, FlagValue("   ", model.KindDate), "empty")
	})

	t.Run("sentinel patterns do not apply to other kinds", func(t *testing.T) {
		assert.Empty(t, FlagValue("0000-00-00", model.KindString))
		assert.Empty(t, FlagValue("$5", model.KindBoolean))
	})
}

// seedExport writes a small legacy-style export file and returns its path.
func seedExport(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.db")
	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE WorkOrder (WorkOrderNo TEXT, RushOrder TEXT, Price TEXT)`)
	require.NoError(t, err)

	rows := [][]interface{}{
		{"W-1", "Y", "$1,200.00"},
		{"W-2", "Y", "85.00"},
		{"W-3", "N", "$1,200.00"},
		{"W-4", "", "$1,200.00"},
	}
	for _, row := range rows {
		_, err = db.Exec(`INSERT INTO WorkOrder VALUES (?, ?, ?)`, row...)
		require.NoError(t, err)
	}

	return path
}

func openExport(t *testing.T, path string) *connector.SQLiteConnector {
	t.Helper()

	conn, err := connector.NewSQLiteConnector(context.Background(), &config.LegacyConfig{
		Path:         path,
		BusyTimeout:  time.Second,
		QueryTimeout: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestAuditorRun(t *testing.T) {
	conn := openExport(t, seedExport(t))

	manifest := &model.Manifest{Tables: []model.TableSpec{{
		Legacy: "WorkOrder",
		Name:   "work_orders",
		Columns: []model.ColumnSpec{
			{Legacy: "WorkOrderNo", Name: "work_order_no", Kind: model.KindString, PrimaryKey: true, NotNull: true},
			{Legacy: "RushOrder", Name: "rush_order", Kind: model.KindBoolean},
			{Legacy: "Price", Name: "price", Kind: model.KindDecimal},
		},
	}}}

	report, err := NewAuditor(conn, manifest, 10).Run(context.Background())
	require.NoError(t, err)

	// Only the columns slated for conversion appear, in manifest order
	require.Len(t, report.Columns, 2)
	assert.Equal(t, "RushOrder", report.Columns[0].LegacyColumn)
	assert.Equal(t, "Price", report.Columns[1].LegacyColumn)

	t.Run("boolean column", func(t *testing.T) {
		col := report.Columns[0]
		assert.Equal(t, int64(3), col.Distinct)
		require.Len(t, col.Top, 3)
		// Frequency descending, ties broken by value
		assert.Equal(t, "Y", col.Top[0].Value)
		assert.Equal(t, int64(2), col.Top[0].Count)
	})

	t.Run("currency values are flagged", func(t *testing.T) {
		col := report.Columns[1]
		require.NotEmpty(t, col.Top)
		assert.Equal(t, "$1,200.00", col.Top[0].Value)
		assert.Equal(t, int64(3), col.Top[0].Count)
		assert.Contains(t, col.Top[0].Flags, "currency-formatted")
	})
}

func TestAuditorRunMissingTable(t *testing.T) {
	conn := openExport(t, seedExport(t))

	manifest := &model.Manifest{Tables: []model.TableSpec{{
		Legacy: "Nowhere",
		Name:   "nowhere",
		Columns: []model.ColumnSpec{
			{Legacy: "id", Name: "id", Kind: model.KindString, PrimaryKey: true},
		},
	}}}

	_, err := NewAuditor(conn, manifest, 10).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
