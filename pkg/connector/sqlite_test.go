// pkg/connector/sqlite_test.go
package connector

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbrite/shopmigrate/pkg/config"
)

func seedExport(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "export.db")
	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE Customer (CustID TEXT, LastName TEXT, MailList TEXT)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO Customer VALUES ('C-1', 'Alvarez', 'Y'), ('C-2', 'Burke', NULL)`)
	require.NoError(t, err)

	return path
}

func openExport(t *testing.T, path string) *SQLiteConnector {
	t.Helper()

	conn, err := NewSQLiteConnector(context.Background(), &config.LegacyConfig{
		Path:         path,
		BusyTimeout:  time.Second,
		QueryTimeout: 30 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSQLiteConnector(t *testing.T) {
	conn := openExport(t, seedExport(t))
	ctx := context.Background()

	t.Run("validates a populated export", func(t *testing.T) {
		assert.NoError(t, conn.Validate())
	})

	t.Run("table existence", func(t *testing.T) {
		exists, err := conn.TableExists(ctx, "Customer")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = conn.TableExists(ctx, "Nowhere")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("reads all rows as untyped maps", func(t *testing.T) {
		rows, err := conn.ReadAllRows(ctx, "Customer")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		// The driver may surface TEXT as string or []byte
		asString := func(v interface{}) string {
			if b, ok := v.([]byte); ok {
				return string(b)
			}
			s, ok := v.(string)
			require.True(t, ok, "unexpected value type %T", v)
			return s
		}

		assert.Equal(t, "C-1", asString(rows[0]["CustID"]))
		assert.Equal(t, "Y", asString(rows[0]["MailList"]))
		assert.Nil(t, rows[1]["MailList"])
	})

	t.Run("counts rows", func(t *testing.T) {
		count, err := CountRows(ctx, conn, `"Customer"`)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("export is read-only", func(t *testing.T) {
		_, err := conn.ExecWithTimeout(ctx, `INSERT INTO Customer VALUES ('C-3', 'Chen', 'N')`, time.Second)
		assert.Error(t, err)
	})
}
