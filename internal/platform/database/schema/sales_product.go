// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// SalesProductTable represents the 'sales.product' table
type SalesProductTable struct {
	Table       string
	ID          string
	Name        string
	Category    string
	Price       string
	Stock       string
	Description string
}

// SalesProduct is the schema definition for sales.product
var SalesProduct = SalesProductTable{
	Table:       "sales.product",
	ID:          "id",
	Name:        "name",
	Category:    "category",
	Price:       "price",
	Stock:       "stock",
	Description: "description",
}

func (t SalesProductTable) Columns() []string {
	return []string{t.ID, t.Name, t.Category, t.Price, t.Stock, t.Description}
}
