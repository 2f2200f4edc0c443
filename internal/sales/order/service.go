// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/platform/validate"
	"github.com/taibuivan/salesdesk/internal/sales/customer"
)

// # Contracts

// CustomerDirectory resolves the customer an order is placed for.
type CustomerDirectory interface {
	GetCustomer(context context.Context, id int64) (*customer.Customer, error)
}

// Recorder receives order metrics.
type Recorder interface {
	RecordOrderCreated(total decimal.Decimal)
	RecordOrderDeleted()
}

// Service implements order use cases on top of the pricing engine.
type Service struct {
	repo      Repository
	pricer    *Pricer
	customers CustomerDirectory
	metrics   Recorder
	logger    *slog.Logger
}

// NewService constructs a new [Service]. customers may be nil, in which case
// the client-supplied customer name and email are always used.
func NewService(repo Repository, pricer *Pricer, customers CustomerDirectory, metrics Recorder, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		pricer:    pricer,
		customers: customers,
		metrics:   metrics,
		logger:    logger,
	}
}

// # Commands

/*
CreateOrder prices the request against the catalog and persists the snapshot.

Nothing is stored unless every line prices successfully.

Returns:
  - *Order: The persisted order with its id and creation time
  - err: VALIDATION_ERROR, NOT_FOUND (unknown product) or internal errors
*/
func (service *Service) CreateOrder(context context.Context, input CreateInput) (*Order, error) {
	lines, total, err := service.pricer.Price(context, input.CustomerID, input.Items)
	if err != nil {
		return nil, err
	}

	name, email, err := service.customerSnapshot(context, input)
	if err != nil {
		return nil, err
	}

	order := &Order{
		CustomerID:    input.CustomerID,
		CustomerName:  name,
		CustomerEmail: email,
		Items:         lines,
		Total:         total,
	}

	if err := service.repo.CreateOrder(context, order); err != nil {
		return nil, fmt.Errorf("order_service_create_failed: %w", err)
	}

	service.metrics.RecordOrderCreated(order.Total)
	service.logger.InfoContext(context, "order_created",
		slog.Int64("order_id", order.ID),
		slog.Int64("customer_id", order.CustomerID),
		slog.Int("lines", len(order.Items)),
		slog.String("total", order.Total.String()),
	)

	return order, nil
}

// customerSnapshot prefers the stored customer's details over the client's.
// Client values are bounded like customer records before they are used.
func (service *Service) customerSnapshot(context context.Context, input CreateInput) (string, string, error) {
	if service.customers != nil {
		stored, err := service.customers.GetCustomer(context, input.CustomerID)
		if err == nil {
			return stored.Name, stored.Email, nil
		}
		if !apperr.HasCode(err, apperr.CodeNotFound) {
			return "", "", fmt.Errorf("order_service_customer_lookup_failed: %w", err)
		}
	}

	name := strings.TrimSpace(input.CustomerName)
	email := strings.TrimSpace(input.CustomerEmail)

	validator := &validate.Validator{}
	validator.
		MaxLen(FieldCustomerName, name, customer.MaxNameLength).
		MaxLen(FieldCustomerEmail, email, customer.MaxEmailLength)
	if err := validator.Err(); err != nil {
		return "", "", err
	}

	return name, email, nil
}

// DeleteOrder removes an order. Deleting an unknown id succeeds.
func (service *Service) DeleteOrder(context context.Context, id int64) error {
	deleted, err := service.repo.DeleteOrder(context, id)
	if err != nil {
		return fmt.Errorf("order_service_delete_failed: %w", err)
	}

	if deleted {
		service.metrics.RecordOrderDeleted()
		service.logger.WarnContext(context, "order_deleted", slog.Int64("order_id", id))
	}
	return nil
}

// # Queries

func (service *Service) ListOrders(context context.Context) ([]*Order, error) {
	return service.repo.ListOrders(context)
}

func (service *Service) GetOrder(context context.Context, id int64) (*Order, error) {
	return service.repo.GetOrder(context, id)
}

// SalesByProduct aggregates all persisted orders per product.
func (service *Service) SalesByProduct(context context.Context) ([]ProductSales, error) {
	orders, err := service.repo.ListOrders(context)
	if err != nil {
		return nil, fmt.Errorf("order_service_report_failed: %w", err)
	}
	return SummarizeByProduct(orders), nil
}
