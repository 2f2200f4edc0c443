// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import "context"

// Repository persists order snapshots.
type Repository interface {
	// ListOrders returns every order, newest first.
	ListOrders(context context.Context) ([]*Order, error)

	// GetOrder returns a NOT_FOUND AppError for unknown ids.
	GetOrder(context context.Context, id int64) (*Order, error)

	// CreateOrder stores the order and its lines in one write and fills in
	// ID and CreatedAt.
	CreateOrder(context context.Context, o *Order) error

	// DeleteOrder reports whether a row was removed. Unknown ids are not an error.
	DeleteOrder(context context.Context, id int64) (bool, error)
}
