// pkg/schema/ddl.go
package schema

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/sunbrite/shopmigrate/pkg/model"
)

// CreateTableSQL builds the CREATE TABLE statement for one manifest table:
// typed columns, primary key, and foreign keys to earlier tables.
func CreateTableSQL(table *model.TableSpec) (string, error) {
	defs := make([]string, 0, len(table.Columns)+2)

	for _, col := range table.Columns {
		def := fmt.Sprintf("%s %s", pq.QuoteIdentifier(col.Name), col.Kind.PgType())
		if col.NotNull {
			def += " NOT NULL"
		}
		defs = append(defs, def)
	}

	pk := table.PrimaryKey()
	if pk == nil {
		return "", fmt.Errorf("table %s has no primary key", table.Name)
	}
	defs = append(defs, fmt.Sprintf("PRIMARY KEY (%s)", pq.QuoteIdentifier(pk.Name)))

	for _, col := range table.Columns {
		if col.References == "" {
			continue
		}
		refTable, refColumn, err := splitReference(col.References)
		if err != nil {
			return "", fmt.Errorf("table %s column %s: %w", table.Name, col.Name, err)
		}
		defs = append(defs, fmt.Sprintf("FOREIGN KEY (%s) REFERENCES %s (%s)",
			pq.QuoteIdentifier(col.Name),
			pq.QuoteIdentifier(refTable),
			pq.QuoteIdentifier(refColumn)))
	}

	return fmt.Sprintf("CREATE TABLE %s (\n\t%s\n)",
		pq.QuoteIdentifier(table.Name),
		strings.Join(defs, ",\n\t")), nil
}

// DropTableSQL builds the DROP statement for one destination table
func DropTableSQL(name string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", pq.QuoteIdentifier(name))
}

// UsersTableSQL is the account table. It is not part of the legacy export;
// its contents are owned by the identity preservation step.
const UsersTableSQL = `CREATE TABLE users (
	id BIGINT NOT NULL,
	username TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (id)
)`

// ConversionIssuesTableSQL is the audit trail of cells that were nulled
// during transfer, one row per rejected value.
const ConversionIssuesTableSQL = `CREATE TABLE conversion_issues (
	id SERIAL PRIMARY KEY,
	run_id TEXT NOT NULL,
	table_name TEXT NOT NULL,
	column_name TEXT NOT NULL,
	row_identifier TEXT NOT NULL,
	raw_value TEXT,
	reason TEXT NOT NULL,
	recorded_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
)`

// splitReference parses a "table(column)" foreign key target
func splitReference(ref string) (string, string, error) {
	open := strings.Index(ref, "(")
	if open <= 0 || !strings.HasSuffix(ref, ")") {
		return "", "", fmt.Errorf("malformed reference %q (want \"table(column)\")", ref)
	}
	table := ref[:open]
	column := ref[open+1 : len(ref)-1]
	if table == "" || column == "" {
		return "", "", fmt.Errorf("malformed reference %q (want \"table(column)\")", ref)
	}
	return table, column, nil
}
