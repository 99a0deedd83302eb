// pkg/model/manifest.go
package model

import "fmt"

// Kind identifies the semantic target type of a destination column.
type Kind int

const (
	// KindString columns are copied verbatim (reference fields stay text)
	KindString Kind = iota
	KindBoolean
	KindDate
	KindDateTime
	KindInteger
	KindDecimal
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// PgType returns the PostgreSQL column type for the kind
func (k Kind) PgType() string {
	switch k {
	case KindBoolean:
		return "BOOLEAN"
	case KindDate:
		return "DATE"
	case KindDateTime:
		return "TIMESTAMP"
	case KindInteger:
		return "INTEGER"
	case KindDecimal:
		return "NUMERIC(10,2)"
	default:
		return "TEXT"
	}
}

// ColumnSpec declares how one legacy column maps to a destination column
type ColumnSpec struct {
	Legacy     string // Column name in the legacy export
	Name       string // Column name in the destination schema
	Kind       Kind   // Target semantic type
	PrimaryKey bool   // Whether column is the primary key
	NotNull    bool   // Whether column is NOT NULL in the destination
	References string // FK target as "table(column)", empty if none
}

// TableSpec declares how one legacy table maps to a destination table
type TableSpec struct {
	Legacy    string       // Table name in the legacy export
	Name      string       // Table name in the destination schema
	DependsOn []string     // Destination tables that must transfer first
	Columns   []ColumnSpec // Column mappings in destination column order
}

// PrimaryKey returns the primary key column spec, or nil if none declared
func (t *TableSpec) PrimaryKey() *ColumnSpec {
	for i := range t.Columns {
		if t.Columns[i].PrimaryKey {
			return &t.Columns[i]
		}
	}
	return nil
}

// Column returns the column spec for a destination column name, or nil
func (t *TableSpec) Column(name string) *ColumnSpec {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i]
		}
	}
	return nil
}

// ColumnNames returns destination column names in declaration order
func (t *TableSpec) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		names[i] = col.Name
	}
	return names
}

// ConvertedColumns returns the columns with a non-string target kind,
// the set the auditor inspects and the converters must handle
func (t *TableSpec) ConvertedColumns() []ColumnSpec {
	converted := make([]ColumnSpec, 0, len(t.Columns))
	for _, col := range t.Columns {
		if col.Kind != KindString {
			converted = append(converted, col)
		}
	}
	return converted
}

// Manifest is the fixed, injectable map of legacy tables and columns to the
// normalized destination schema. Adding a table is a data change here, not a
// code reorder in the orchestrator.
type Manifest struct {
	Tables []TableSpec
}

// Table returns the table spec for a destination table name, or nil
func (m *Manifest) Table(name string) *TableSpec {
	for i := range m.Tables {
		if m.Tables[i].Name == name {
			return &m.Tables[i]
		}
	}
	return nil
}

// Validate checks the manifest for structural consistency
func (m *Manifest) Validate() error {
	seen := make(map[string]bool, len(m.Tables))
	for _, table := range m.Tables {
		if table.Legacy == "" || table.Name == "" {
			return fmt.Errorf("table %q/%q: legacy and destination names are required", table.Legacy, table.Name)
		}
		if seen[table.Name] {
			return fmt.Errorf("duplicate destination table %q", table.Name)
		}
		seen[table.Name] = true

		if table.PrimaryKey() == nil {
			return fmt.Errorf("table %q has no primary key column", table.Name)
		}
	}

	for _, table := range m.Tables {
		for _, dep := range table.DependsOn {
			if !seen[dep] {
				return fmt.Errorf("table %q depends on unknown table %q", table.Name, dep)
			}
		}
	}

	return nil
}

// Ordered returns the tables in transfer order: a topological walk of the
// dependency graph so every table comes after the tables it references.
// Returns an error if the graph contains a cycle.
func (m *Manifest) Ordered() ([]TableSpec, error) {
	inDegree := make(map[string]int, len(m.Tables))
	dependents := make(map[string][]string, len(m.Tables))

	for _, table := range m.Tables {
		inDegree[table.Name] = len(table.DependsOn)
		for _, dep := range table.DependsOn {
			dependents[dep] = append(dependents[dep], table.Name)
		}
	}

	// Seed the queue in declaration order so the walk is deterministic
	queue := make([]string, 0, len(m.Tables))
	for _, table := range m.Tables {
		if inDegree[table.Name] == 0 {
			queue = append(queue, table.Name)
		}
	}

	ordered := make([]TableSpec, 0, len(m.Tables))
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		table := m.Table(name)
		if table == nil {
			return nil, fmt.Errorf("table %q missing from manifest", name)
		}
		ordered = append(ordered, *table)

		for _, dependent := range dependents[name] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(ordered) != len(m.Tables) {
		return nil, fmt.Errorf("dependency cycle detected: ordered %d of %d tables", len(ordered), len(m.Tables))
	}

	return ordered, nil
}
