// pkg/schema/ddl_test.go
package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunbrite/shopmigrate/pkg/model"
)

func TestCreateTableSQL(t *testing.T) {
	table := &model.TableSpec{
		Legacy: "WorkOrder",
		Name:   "work_orders",
		Columns: []model.ColumnSpec{
			{Legacy: "WorkOrderNo", Name: "work_order_no", Kind: model.KindString, PrimaryKey: true, NotNull: true},
			{Legacy: "CustID", Name: "cust_id", Kind: model.KindString, References: "customers(cust_id)"},
			{Legacy: "DateIn", Name: "date_in", Kind: model.KindDateTime},
			{Legacy: "RushOrder", Name: "rush_order", Kind: model.KindBoolean},
			{Legacy: "Price", Name: "price", Kind: model.KindDecimal},
		},
	}

	sql, err := CreateTableSQL(table)
	require.NoError(t, err)

	assert.Contains(t, sql, `CREATE TABLE "work_orders"`)
	assert.Contains(t, sql, `"work_order_no" TEXT NOT NULL`)
	assert.Contains(t, sql, `"date_in" TIMESTAMP`)
	assert.Contains(t, sql, `"rush_order" BOOLEAN`)
	assert.Contains(t, sql, `"price" NUMERIC(10,2)`)
	assert.Contains(t, sql, `PRIMARY KEY ("work_order_no")`)
	assert.Contains(t, sql, `FOREIGN KEY ("cust_id") REFERENCES "customers" ("cust_id")`)
}

func TestCreateTableSQLErrors(t *testing.T) {
	t.Run("no primary key", func(t *testing.T) {
		table := &model.TableSpec{
			Legacy:  "A",
			Name:    "things",
			Columns: []model.ColumnSpec{{Legacy: "id", Name: "id", Kind: model.KindString}},
		}
		_, err := CreateTableSQL(table)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "primary key")
	})

	t.Run("malformed reference", func(t *testing.T) {
		table := &model.TableSpec{
			Legacy: "A",
			Name:   "things",
			Columns: []model.ColumnSpec{
				{Legacy: "id", Name: "id", Kind: model.KindString, PrimaryKey: true},
				{Legacy: "ref", Name: "ref", Kind: model.KindString, References: "customers.cust_id"},
			},
		}
		_, err := CreateTableSQL(table)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed reference")
	})
}

func TestDropTableSQL(t *testing.T) {
	assert.Equal(t, `DROP TABLE IF EXISTS "work_orders" CASCADE`, DropTableSQL("work_orders"))
}

func TestSplitReference(t *testing.T) {
	t.Run("well formed", func(t *testing.T) {
		table, column, err := splitReference("customers(cust_id)")
		require.NoError(t, err)
		assert.Equal(t, "customers", table)
		assert.Equal(t, "cust_id", column)
	})

	t.Run("malformed", func(t *testing.T) {
		for _, ref := range []string{"customers", "customers()", "(cust_id)", "customers(cust_id"} {
			_, _, err := splitReference(ref)
			assert.Error(t, err, "ref=%q", ref)
		}
	})
}

func TestManifestTablesMaterialize(t *testing.T) {
	m := model.ShopManifest()
	for _, table := range m.Tables {
		table := table
		t.Run(table.Name, func(t *testing.T) {
			sql, err := CreateTableSQL(&table)
			require.NoError(t, err)
			assert.Contains(t, sql, "PRIMARY KEY")
		})
	}
}
