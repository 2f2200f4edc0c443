// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package customer

import "context"

// Repository persists customers.
//
// Get, Update and Delete return a NOT_FOUND AppError for unknown ids.
type Repository interface {
	ListCustomers(context context.Context) ([]*Customer, error)
	GetCustomer(context context.Context, id int64) (*Customer, error)
	CreateCustomer(context context.Context, c *Customer) error
	UpdateCustomer(context context.Context, c *Customer) error
	DeleteCustomer(context context.Context, id int64) error
}
