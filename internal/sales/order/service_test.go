// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/sales/customer"
	"github.com/taibuivan/salesdesk/internal/sales/order"
)

// failingCustomers makes every customer lookup fail with an infrastructure error.
type failingCustomers struct{}

func (failingCustomers) GetCustomer(context.Context, int64) (*customer.Customer, error) {
	return nil, apperr.Internal(errors.New("timeout"))
}

func TestCreateOrder_PersistsPricedSnapshot(t *testing.T) {
	f := newFixture(nil, item(1, "Widget", "10"))

	created, err := f.service.CreateOrder(context.Background(), order.CreateInput{
		CustomerID:    5,
		CustomerName:  " Walk-in ",
		CustomerEmail: "walkin@x.test",
		Items:         []order.LineInput{{ProductID: 1, Quantity: 2}, {ProductID: 1, Quantity: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, "Walk-in", created.CustomerName)
	assert.Equal(t, "50", created.Total.String())
	assert.Equal(t, 1, f.orders.writes)

	stored, err := f.service.GetOrder(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Items, stored.Items)

	require.Len(t, f.recorder.created, 1)
	assert.Equal(t, "50", f.recorder.created[0].String())
}

/*
TestCreateOrder_UnknownProductPersistsNothing rejects the whole order when one line cannot be priced.
*/
func TestCreateOrder_UnknownProductPersistsNothing(t *testing.T) {
	f := newFixture(nil, item(1, "Widget", "10"))

	_, err := f.service.CreateOrder(context.Background(), order.CreateInput{
		CustomerID: 5,
		Items:      []order.LineInput{{ProductID: 1, Quantity: 1}, {ProductID: 2, Quantity: 1}},
	})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	assert.Zero(t, f.orders.writes)
	assert.Empty(t, f.recorder.created)

	orders, err := f.service.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCreateOrder_CustomerSnapshot(t *testing.T) {
	known := memoryCustomers{5: {ID: 5, Name: "Stored Name", Email: "stored@x.test"}}
	input := func(customerID int64) order.CreateInput {
		return order.CreateInput{
			CustomerID:    customerID,
			CustomerName:  "Client Name",
			CustomerEmail: "client@x.test",
			Items:         []order.LineInput{{ProductID: 1, Quantity: 1}},
		}
	}

	t.Run("known_customer_wins", func(t *testing.T) {
		f := newFixture(known, item(1, "Widget", "10"))
		created, err := f.service.CreateOrder(context.Background(), input(5))
		require.NoError(t, err)
		assert.Equal(t, "Stored Name", created.CustomerName)
		assert.Equal(t, "stored@x.test", created.CustomerEmail)
	})

	t.Run("unknown_customer_uses_client_values", func(t *testing.T) {
		f := newFixture(known, item(1, "Widget", "10"))
		created, err := f.service.CreateOrder(context.Background(), input(6))
		require.NoError(t, err)
		assert.Equal(t, "Client Name", created.CustomerName)
		assert.Equal(t, "client@x.test", created.CustomerEmail)
	})

	t.Run("client_values_are_trimmed", func(t *testing.T) {
		f := newFixture(known, item(1, "Widget", "10"))
		in := input(6)
		in.CustomerName = "  Client Name  "
		created, err := f.service.CreateOrder(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "Client Name", created.CustomerName)
	})

	t.Run("oversized_client_values_rejected", func(t *testing.T) {
		tests := []struct {
			name  string
			edit  func(*order.CreateInput)
			field string
		}{
			{"name", func(in *order.CreateInput) { in.CustomerName = strings.Repeat("n", customer.MaxNameLength+1) }, order.FieldCustomerName},
			{"email", func(in *order.CreateInput) { in.CustomerEmail = strings.Repeat("e", customer.MaxEmailLength+1) }, order.FieldCustomerEmail},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture(known, item(1, "Widget", "10"))
				in := input(6)
				tt.edit(&in)

				_, err := f.service.CreateOrder(context.Background(), in)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				require.NotEmpty(t, ae.Details)
				assert.Equal(t, tt.field, ae.Details[0].Field)
				assert.Zero(t, f.orders.writes)
			})
		}
	})

	t.Run("stored_customer_skips_client_bounds", func(t *testing.T) {
		f := newFixture(known, item(1, "Widget", "10"))
		in := input(5)
		in.CustomerName = strings.Repeat("n", customer.MaxNameLength+1)
		created, err := f.service.CreateOrder(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "Stored Name", created.CustomerName)
	})

	t.Run("lookup_failure_aborts", func(t *testing.T) {
		f := newFixture(failingCustomers{}, item(1, "Widget", "10"))
		_, err := f.service.CreateOrder(context.Background(), input(5))
		assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
		assert.Zero(t, f.orders.writes)
	})
}

/*
TestCreateOrder_CatalogChangesDoNotRewriteHistory keeps the snapshot price after a catalog update.
*/
func TestCreateOrder_CatalogChangesDoNotRewriteHistory(t *testing.T) {
	f := newFixture(nil, item(1, "Widget", "10"))
	ctx := context.Background()

	created, err := f.service.CreateOrder(ctx, order.CreateInput{CustomerID: 1, Items: []order.LineInput{{ProductID: 1, Quantity: 1}}})
	require.NoError(t, err)

	f.catalog.products[1] = item(1, "Widget v2", "99")

	stored, err := f.service.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", stored.Items[0].ProductName)
	assert.Equal(t, "10", stored.Items[0].UnitPrice.String())
}

func TestDeleteOrder_Idempotent(t *testing.T) {
	f := newFixture(nil, item(1, "Widget", "10"))
	ctx := context.Background()

	created, err := f.service.CreateOrder(ctx, order.CreateInput{CustomerID: 1, Items: []order.LineInput{{ProductID: 1, Quantity: 1}}})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteOrder(ctx, created.ID))
	require.NoError(t, f.service.DeleteOrder(ctx, created.ID))
	require.NoError(t, f.service.DeleteOrder(ctx, 12345))
	assert.Equal(t, 1, f.recorder.deleted)

	_, err = f.service.GetOrder(ctx, created.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
