// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order_test

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/sales/order"
	"github.com/taibuivan/salesdesk/internal/sales/product"
)

/*
TestPrice_RepeatedProductStaysSeparateLines prices two lines of the same product independently.
*/
func TestPrice_RepeatedProductStaysSeparateLines(t *testing.T) {
	catalog := newCatalog(item(1, "Widget", "10"))
	pricer := order.NewPricer(catalog)

	lines, total, err := pricer.Price(context.Background(), 7, []order.LineInput{
		{ProductID: 1, Quantity: 2},
		{ProductID: 1, Quantity: 3},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "20", lines[0].LineTotal.String())
	assert.Equal(t, "30", lines[1].LineTotal.String())
	assert.Equal(t, "50", total.String())
	assert.Equal(t, "Widget", lines[0].ProductName)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 3, lines[1].Quantity)

	// One lookup per distinct product.
	assert.Equal(t, []int64{1}, catalog.lookups)
}

func TestPrice_PreservesLineOrder(t *testing.T) {
	pricer := order.NewPricer(newCatalog(item(1, "A", "1.10"), item(2, "B", "2.25"), item(3, "C", "0.05")))

	lines, total, err := pricer.Price(context.Background(), 1, []order.LineInput{
		{ProductID: 3, Quantity: 1},
		{ProductID: 1, Quantity: 4},
		{ProductID: 2, Quantity: 2},
	})
	require.NoError(t, err)

	ids := []int64{lines[0].ProductID, lines[1].ProductID, lines[2].ProductID}
	assert.Equal(t, []int64{3, 1, 2}, ids)
	assert.True(t, total.Equal(decimal.RequireFromString("8.95")), total.String())
}

/*
TestPrice_UnknownProductFailsFast stops at the first missing product and names it.
*/
func TestPrice_UnknownProductFailsFast(t *testing.T) {
	catalog := newCatalog(item(1, "Widget", "10"))
	pricer := order.NewPricer(catalog)

	_, _, err := pricer.Price(context.Background(), 1, []order.LineInput{
		{ProductID: 1, Quantity: 1},
		{ProductID: 99, Quantity: 1},
		{ProductID: 100, Quantity: 1},
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
	assert.Equal(t, "Product 99 not found", ae.Message)
	assert.Equal(t, []int64{1, 99}, catalog.lookups)
}

func TestPrice_CatalogFailureIsNotNotFound(t *testing.T) {
	catalog := newCatalog(item(1, "Widget", "10"))
	catalog.err = apperr.Internal(errors.New("connection reset"))

	_, _, err := order.NewPricer(catalog).Price(context.Background(), 1, []order.LineInput{{ProductID: 1, Quantity: 1}})
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
}

func TestPrice_Validation(t *testing.T) {
	tests := []struct {
		name       string
		customerID int64
		lines      []order.LineInput
		message    string
		field      string
	}{
		{"missing_customer", 0, []order.LineInput{{ProductID: 1, Quantity: 1}}, order.MsgCustomerAndItemsRequired, order.FieldCustomerID},
		{"no_items", 1, nil, order.MsgCustomerAndItemsRequired, order.FieldItems},
		{"zero_quantity", 1, []order.LineInput{{ProductID: 1, Quantity: 0}}, order.MsgQuantityTooSmall, "items[0].quantity"},
		{"negative_quantity", 1, []order.LineInput{{ProductID: 1, Quantity: 1}, {ProductID: 1, Quantity: -2}}, order.MsgQuantityTooSmall, "items[1].quantity"},
		{"missing_product", 1, []order.LineInput{{Quantity: 1}}, order.MsgProductIDRequired, "items[0].productId"},
		{"quantity_above_max", 1, []order.LineInput{{ProductID: 1, Quantity: order.MaxQuantity + 1}}, order.MsgQuantityTooLarge, "items[0].quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := newCatalog(item(1, "Widget", "10"))

			_, _, err := order.NewPricer(catalog).Price(context.Background(), tt.customerID, tt.lines)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, tt.message, ae.Message)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.Empty(t, catalog.lookups)
		})
	}
}

/*
TestPrice_TotalMatchesLineSum checks the total against an integer-cent
computation over randomized catalogs and line sets.
*/
/*
TestPrice_AmountCeiling rejects totals the order table cannot store.
*/
func TestPrice_AmountCeiling(t *testing.T) {
	catalog := newCatalog(item(1, "Yacht", "9999999999.99"))
	pricer := order.NewPricer(catalog)

	t.Run("line_total", func(t *testing.T) {
		_, _, err := pricer.Price(context.Background(), 1, []order.LineInput{
			{ProductID: 1, Quantity: 1},
			{ProductID: 1, Quantity: order.MaxQuantity},
		})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeValidation, ae.Code)
		assert.Equal(t, order.MsgAmountTooLarge, ae.Message)
		require.NotEmpty(t, ae.Details)
		assert.Equal(t, "items[1].quantity", ae.Details[0].Field)
	})

	t.Run("order_total", func(t *testing.T) {
		lines := make([]order.LineInput, 101)
		for i := range lines {
			lines[i] = order.LineInput{ProductID: 1, Quantity: 1}
		}

		_, _, err := pricer.Price(context.Background(), 1, lines)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, order.MsgAmountTooLarge, ae.Message)
		require.Len(t, ae.Details, 1)
		assert.Equal(t, order.FieldTotal, ae.Details[0].Field)
	})

	t.Run("at_ceiling", func(t *testing.T) {
		lines := make([]order.LineInput, 100)
		for i := range lines {
			lines[i] = order.LineInput{ProductID: 1, Quantity: 1}
		}

		_, total, err := pricer.Price(context.Background(), 1, lines)
		require.NoError(t, err)
		assert.True(t, total.LessThanOrEqual(order.MaxAmount))
	})
}

func TestPrice_TotalMatchesLineSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for round := 0; round < 200; round++ {
		cents := map[int64]int64{}
		var products []product.Product
		for id := int64(1); id <= 5; id++ {
			cents[id] = rng.Int64N(100_000)
			products = append(products, product.Product{ID: id, Name: "P", Price: decimal.New(cents[id], -2)})
		}

		var lines []order.LineInput
		var wantCents int64
		for n := 1 + rng.IntN(8); n > 0; n-- {
			id := 1 + rng.Int64N(5)
			quantity := 1 + rng.IntN(50)
			lines = append(lines, order.LineInput{ProductID: id, Quantity: quantity})
			wantCents += cents[id] * int64(quantity)
		}

		priced, total, err := order.NewPricer(newCatalog(products...)).Price(context.Background(), 1, lines)
		require.NoError(t, err)
		require.Len(t, priced, len(lines))

		for _, line := range priced {
			assert.True(t, line.LineTotal.Equal(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))))
		}
		assert.True(t, total.Equal(order.Total(priced)))
		assert.True(t, total.Equal(decimal.New(wantCents, -2)), "round %d: %s", round, total)
	}
}
