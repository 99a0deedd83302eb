// pkg/model/shop.go
package model

// ShopManifest returns the conversion manifest for the awning shop's legacy
// desktop database. Boolean encodings differ between sibling tables in the
// source data (WorkOrder uses Y/N, RepairOrder uses YES/NO, Customer uses
// 1/0); the converter vocabulary covers all of them, so the manifest records
// the target type only.
func ShopManifest() *Manifest {
	return &Manifest{
		Tables: []TableSpec{
			{
				Legacy: "Source",
				Name:   "sources",
				Columns: []ColumnSpec{
					{Legacy: "SourceID", Name: "source_id", Kind: KindInteger, PrimaryKey: true, NotNull: true},
					{Legacy: "Description", Name: "description", Kind: KindString},
				},
			},
			{
				Legacy:    "Customer",
				Name:      "customers",
				DependsOn: []string{"sources"},
				Columns: []ColumnSpec{
					{Legacy: "CustID", Name: "cust_id", Kind: KindInteger, PrimaryKey: true, NotNull: true},
					{Legacy: "FirstName", Name: "first_name", Kind: KindString},
					{Legacy: "LastName", Name: "last_name", Kind: KindString},
					{Legacy: "Company", Name: "company", Kind: KindString},
					{Legacy: "Address", Name: "address", Kind: KindString},
					{Legacy: "City", Name: "city", Kind: KindString},
					{Legacy: "State", Name: "state", Kind: KindString},
					{Legacy: "Zip", Name: "zip", Kind: KindString},
					{Legacy: "Phone", Name: "phone", Kind: KindString},
					{Legacy: "Email", Name: "email", Kind: KindString},
					{Legacy: "SourceID", Name: "source_id", Kind: KindInteger, References: "sources(source_id)"},
					{Legacy: "EnterDate", Name: "enter_date", Kind: KindDate},
					{Legacy: "MailList", Name: "mail_list", Kind: KindBoolean},
				},
			},
			{
				Legacy: "Inventory",
				Name:   "inventory",
				Columns: []ColumnSpec{
					{Legacy: "ItemNo", Name: "item_no", Kind: KindInteger, PrimaryKey: true, NotNull: true},
					{Legacy: "Description", Name: "description", Kind: KindString},
					{Legacy: "QtyOnHand", Name: "qty_on_hand", Kind: KindInteger},
					{Legacy: "Cost", Name: "cost", Kind: KindDecimal},
					{Legacy: "Price", Name: "price", Kind: KindDecimal},
					{Legacy: "Discontinued", Name: "discontinued", Kind: KindBoolean},
				},
			},
			{
				Legacy:    "WorkOrder",
				Name:      "work_orders",
				DependsOn: []string{"customers"},
				Columns: []ColumnSpec{
					{Legacy: "WorkOrderNo", Name: "work_order_no", Kind: KindString, PrimaryKey: true, NotNull: true},
					{Legacy: "CustID", Name: "cust_id", Kind: KindInteger, References: "customers(cust_id)"},
					{Legacy: "DateIn", Name: "date_in", Kind: KindDateTime},
					{Legacy: "DateRequired", Name: "date_required", Kind: KindDate},
					{Legacy: "DateOut", Name: "date_out", Kind: KindDate},
					{Legacy: "RushOrder", Name: "rush_order", Kind: KindBoolean},
					{Legacy: "Clean", Name: "clean", Kind: KindBoolean},
					{Legacy: "Repair", Name: "repair", Kind: KindBoolean},
					{Legacy: "Quantity", Name: "quantity", Kind: KindInteger},
					{Legacy: "Price", Name: "price", Kind: KindDecimal},
					{Legacy: "StorageLocation", Name: "storage_location", Kind: KindString},
					{Legacy: "Notes", Name: "notes", Kind: KindString},
				},
			},
			{
				Legacy:    "RepairOrder",
				Name:      "repair_orders",
				DependsOn: []string{"customers", "work_orders"},
				Columns: []ColumnSpec{
					{Legacy: "RepairOrderNo", Name: "repair_order_no", Kind: KindString, PrimaryKey: true, NotNull: true},
					{Legacy: "CustID", Name: "cust_id", Kind: KindInteger, References: "customers(cust_id)"},
					// Cross-reference kept as plain text: legacy rows point at
					// work orders that were purged from the source years ago.
					{Legacy: "WorkOrderNo", Name: "work_order_no", Kind: KindString},
					{Legacy: "DateIn", Name: "date_in", Kind: KindDateTime},
					{Legacy: "DatePromised", Name: "date_promised", Kind: KindDate},
					{Legacy: "DateCompleted", Name: "date_completed", Kind: KindDate},
					{Legacy: "Approved", Name: "approved", Kind: KindBoolean},
					{Legacy: "Warranty", Name: "warranty", Kind: KindBoolean},
					{Legacy: "LaborHours", Name: "labor_hours", Kind: KindDecimal},
					{Legacy: "Parts", Name: "parts", Kind: KindDecimal},
					{Legacy: "Total", Name: "total", Kind: KindDecimal},
					{Legacy: "Description", Name: "description", Kind: KindString},
				},
			},
			{
				Legacy:    "WorkOrderItem",
				Name:      "work_order_items",
				DependsOn: []string{"work_orders"},
				Columns: []ColumnSpec{
					{Legacy: "ItemID", Name: "item_id", Kind: KindInteger, PrimaryKey: true, NotNull: true},
					{Legacy: "WorkOrderNo", Name: "work_order_no", Kind: KindString, References: "work_orders(work_order_no)"},
					{Legacy: "LineNo", Name: "line_no", Kind: KindInteger},
					{Legacy: "Description", Name: "description", Kind: KindString},
					{Legacy: "Qty", Name: "qty", Kind: KindInteger},
					{Legacy: "UnitPrice", Name: "unit_price", Kind: KindDecimal},
				},
			},
		},
	}
}
