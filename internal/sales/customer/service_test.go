// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package customer_test

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/sales/customer"
	"github.com/taibuivan/salesdesk/pkg/pointer"
)

// # Fakes

type memoryCustomers struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]customer.Customer
	clock  time.Time
}

func newMemoryCustomers() *memoryCustomers {
	return &memoryCustomers{rows: map[int64]customer.Customer{}, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (store *memoryCustomers) ListCustomers(_ context.Context) ([]*customer.Customer, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	var out []*customer.Customer
	for _, row := range store.rows {
		copied := row
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (store *memoryCustomers) GetCustomer(_ context.Context, id int64) (*customer.Customer, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	row, ok := store.rows[id]
	if !ok {
		return nil, apperr.NotFound("Customer")
	}
	return &row, nil
}

func (store *memoryCustomers) CreateCustomer(_ context.Context, c *customer.Customer) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.nextID++
	store.clock = store.clock.Add(time.Minute)
	c.ID = store.nextID
	c.CreatedAt = store.clock
	store.rows[c.ID] = *c
	return nil
}

func (store *memoryCustomers) UpdateCustomer(_ context.Context, c *customer.Customer) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	existing, ok := store.rows[c.ID]
	if !ok {
		return apperr.NotFound("Customer")
	}
	c.CreatedAt = existing.CreatedAt
	store.rows[c.ID] = *c
	return nil
}

func (store *memoryCustomers) DeleteCustomer(_ context.Context, id int64) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.rows[id]; !ok {
		return apperr.NotFound("Customer")
	}
	delete(store.rows, id)
	return nil
}

func newService() (*customer.Service, *memoryCustomers) {
	store := newMemoryCustomers()
	return customer.NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil))), store
}

// # Tests

func TestCreateCustomer_TrimsAndDropsBlankOptionals(t *testing.T) {
	service, _ := newService()

	created, err := service.CreateCustomer(context.Background(), customer.Input{
		Name:    "  Acme Buyer ",
		Email:   " buyer@acme.test",
		Phone:   pointer.To("   "),
		Company: pointer.To(" Acme "),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Acme Buyer", created.Name)
	assert.Equal(t, "buyer@acme.test", created.Email)
	assert.Nil(t, created.Phone)
	assert.Equal(t, "Acme", pointer.Val(created.Company))
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateCustomer_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input customer.Input
		field string
	}{
		{"missing_name", customer.Input{Email: "a@b.test"}, customer.FieldName},
		{"missing_email", customer.Input{Name: "Ana"}, customer.FieldEmail},
		{"blank_both", customer.Input{Name: " ", Email: " "}, customer.FieldName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newService()

			_, err := service.CreateCustomer(context.Background(), tt.input)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, 400, ae.HTTPStatus)
			assert.Equal(t, customer.MsgNameAndEmailRequired, ae.Message)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.Empty(t, store.rows)
		})
	}
}

/*
TestUpdateCustomer_ReplacesFields verifies a full replace keeps the id and creation time.
*/
func TestUpdateCustomer_ReplacesFields(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	created, err := service.CreateCustomer(ctx, customer.Input{Name: "Ana", Email: "ana@x.test", Company: pointer.To("X")})
	require.NoError(t, err)

	updated, err := service.UpdateCustomer(ctx, created.ID, customer.Input{Name: "Ana B", Email: "anab@x.test"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Nil(t, updated.Company)

	fetched, err := service.GetCustomer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana B", fetched.Name)
}

func TestUnknownCustomerIsNotFound(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	_, err := service.GetCustomer(ctx, 99)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = service.UpdateCustomer(ctx, 99, customer.Input{Name: "Ana", Email: "ana@x.test"})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	err = service.DeleteCustomer(ctx, 99)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestListCustomers_NewestFirst(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	for _, name := range []string{"First", "Second", "Third"} {
		_, err := service.CreateCustomer(ctx, customer.Input{Name: name, Email: name + "@x.test"})
		require.NoError(t, err)
	}

	customers, err := service.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Third", customers[0].Name)
	assert.Equal(t, "First", customers[2].Name)
}
