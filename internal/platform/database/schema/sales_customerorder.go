// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SalesOrderTable represents the 'sales.customerorder' table.
// Items holds the line snapshots as a JSONB array.
type SalesOrderTable struct {
	Table         string
	ID            string
	CreatedAt     string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	Items         string
	Total         string
}

// SalesOrder is the schema definition for sales.customerorder
var SalesOrder = SalesOrderTable{
	Table:         "sales.customerorder",
	ID:            "id",
	CreatedAt:     "createdat",
	CustomerID:    "customerid",
	CustomerName:  "customername",
	CustomerEmail: "customeremail",
	Items:         "items",
	Total:         "total",
}

func (t SalesOrderTable) Columns() []string {
	return []string{t.ID, t.CreatedAt, t.CustomerID, t.CustomerName, t.CustomerEmail, t.Items, t.Total}
}
