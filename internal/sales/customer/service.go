// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package customer

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

func (service *Service) ListCustomers(context context.Context) ([]*Customer, error) {
	return service.repo.ListCustomers(context)
}

// GetCustomer returns the customer or a NOT_FOUND AppError.
func (service *Service) GetCustomer(context context.Context, id int64) (*Customer, error) {
	return service.repo.GetCustomer(context, id)
}

func (service *Service) CreateCustomer(context context.Context, input Input) (*Customer, error) {
	customer, err := fromInput(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.CreateCustomer(context, customer); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "customer_created", slog.Int64("customer_id", customer.ID))
	return customer, nil
}

// UpdateCustomer replaces every editable field of an existing customer.
func (service *Service) UpdateCustomer(context context.Context, id int64, input Input) (*Customer, error) {
	customer, err := fromInput(input)
	if err != nil {
		return nil, err
	}
	customer.ID = id

	if err := service.repo.UpdateCustomer(context, customer); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "customer_updated", slog.Int64("customer_id", id))
	return customer, nil
}

func (service *Service) DeleteCustomer(context context.Context, id int64) error {
	if err := service.repo.DeleteCustomer(context, id); err != nil {
		return err
	}

	service.logger.WarnContext(context, "customer_deleted", slog.Int64("customer_id", id))
	return nil
}

func fromInput(input Input) (*Customer, error) {
	customer := &Customer{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   trimOptional(input.Phone),
		Company: trimOptional(input.Company),
	}

	validator := &validate.Validator{}
	validator.
		Custom(FieldName, customer.Name == "", MsgNameAndEmailRequired).
		Custom(FieldEmail, customer.Email == "", MsgNameAndEmailRequired).
		MaxLen(FieldName, customer.Name, MaxNameLength).
		MaxLen(FieldEmail, customer.Email, MaxEmailLength)
	if customer.Phone != nil {
		validator.MaxLen(FieldPhone, *customer.Phone, MaxPhoneLength)
	}
	if customer.Company != nil {
		validator.MaxLen(FieldCompany, *customer.Company, MaxCompanyLength)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return customer, nil
}

// trimOptional maps blank optional strings to NULL.
func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return pointer.To(trimmed)
}
