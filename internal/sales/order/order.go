// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package order records sales as immutable snapshots.

An order copies the customer's name and email and each product's name and
unit price at creation time. Line totals and the order total are always
computed server-side from catalog prices; whatever the client sends for
them is ignored. Orders are created, read and deleted, never edited.
*/
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Line is a priced snapshot of one requested product.
// LineTotal is always UnitPrice * Quantity.
type Line struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"lineTotal"`
}

// Order is a persisted sale. Total is the sum of the line totals.
type Order struct {
	ID            int64           `json:"id"`
	CreatedAt     time.Time       `json:"createdAt"`
	CustomerID    int64           `json:"customerId"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	Items         []Line          `json:"items"`
	Total         decimal.Decimal `json:"total"`
}

// LineInput is a requested line. Only the product and quantity are read.
type LineInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateInput is the body of an order creation request.
//
// CustomerName and CustomerEmail are used only when the customer is not
// known to the customer store.
type CreateInput struct {
	CustomerID    int64       `json:"customerId"`
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	Items         []LineInput `json:"items"`
}

// Field names for validation
const (
	FieldCustomerID    = "customerId"
	FieldCustomerName  = "customerName"
	FieldCustomerEmail = "customerEmail"
	FieldItems         = "items"
	FieldTotal         = "total"
)

const (
	MinQuantity = 1
	MaxQuantity = 1_000_000

	MsgCustomerAndItemsRequired = "Customer and at least one line item required"
	MsgQuantityTooSmall         = "Quantity must be at least 1"
	MsgQuantityTooLarge         = "Quantity must be at most 1000000"
	MsgProductIDRequired        = "Product ID is required"
	MsgAmountTooLarge           = "Amount exceeds 999999999999.99"
)

// MaxAmount is the largest line or order total the order table can hold.
var MaxAmount = decimal.RequireFromString("999999999999.99")
