// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product manages the catalog that order lines are priced from.

The catalog price is authoritative: order creation reads it through
[Service.GetProduct] and ignores any price the client sends. Stock is kept
for display only and is never decremented by orders.
*/
package product

import "github.com/shopspring/decimal"

// Product is a sellable catalog entry.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Category    *string         `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Description *string         `json:"description"`
}

// Input carries the client-editable fields for create and update.
// Price is a pointer so a missing price can be told apart from zero.
type Input struct {
	Name        string           `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Description *string          `json:"description"`
}

// Field names for validation
const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldPrice    = "price"
	FieldStock    = "stock"
)

const (
	MaxNameLength     = 200
	MaxCategoryLength = 100

	// PriceScale matches the NUMERIC(12,2) price column.
	PriceScale = 2

	MsgNameAndPriceRequired = "Name and price are required"
	MsgStockNegative        = "Stock must not be negative"
)
