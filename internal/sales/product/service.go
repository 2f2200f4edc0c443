// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/salesdesk/internal/platform/validate"
	"github.com/taibuivan/salesdesk/pkg/pointer"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListProducts returns the catalog ordered by id.
func (service *Service) ListProducts(context context.Context) ([]*Product, error) {
	return service.repo.ListProducts(context)
}

/*
GetProduct returns the authoritative catalog entry for id.

Order pricing resolves every line through this method.

Returns:
  - *Product: Current name and price
  - error: NOT_FOUND AppError for unknown ids
*/
func (service *Service) GetProduct(context context.Context, id int64) (*Product, error) {
	return service.repo.GetProduct(context, id)
}

func (service *Service) CreateProduct(context context.Context, input Input) (*Product, error) {
	product, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.CreateProduct(context, product); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "product_created",
		slog.Int64("product_id", product.ID),
		slog.String("price", product.Price.StringFixed(PriceScale)),
	)
	return product, nil
}

// UpdateProduct replaces every editable field. Existing orders keep the
// price they were created with.
func (service *Service) UpdateProduct(context context.Context, id int64, input Input) (*Product, error) {
	product, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := service.repo.UpdateProduct(context, product); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "product_updated", slog.Int64("product_id", id))
	return product, nil
}

func (service *Service) DeleteProduct(context context.Context, id int64) error {
	if err := service.repo.DeleteProduct(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "product_deleted", slog.Int64("product_id", id))
	return nil
}

func fromInput(input Input) (*Product, error) {
	name := strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.
		Custom(FieldName, name == "", MsgNameAndPriceRequired).
		Custom(FieldPrice, input.Price == nil, MsgNameAndPriceRequired).
		MaxLen(FieldName, name, MaxNameLength).
		Custom(FieldStock, pointer.Val(input.Stock) < 0, MsgStockNegative)
	if input.Price != nil {
		validator.NonNegative(FieldPrice, *input.Price)
	}
	if input.Category != nil {
		validator.MaxLen(FieldCategory, *input.Category, MaxCategoryLength)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Product{
		Name:        name,
		Category:    input.Category,
		Price:       input.Price.Round(PriceScale),
		Stock:       pointer.Val(input.Stock),
		Description: input.Description,
	}, nil
}
