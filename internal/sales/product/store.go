// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// Repository persists catalog products.
//
// Get, Update and Delete return a NOT_FOUND AppError for unknown ids.
type Repository interface {
	ListProducts(context context.Context) ([]*Product, error)
	GetProduct(context context.Context, id int64) (*Product, error)
	CreateProduct(context context.Context, p *Product) error
	UpdateProduct(context context.Context, p *Product) error
	DeleteProduct(context context.Context, id int64) error
}
