// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/salesdesk/internal/sales/order"
)

func newRouter(f *fixture) http.Handler {
	handler := order.NewHandler(f.service)
	router := chi.NewRouter()
	router.Route("/api/orders", handler.RegisterRoutes)
	router.Route("/api/reports", handler.RegisterReportRoutes)
	return router
}

func call(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestOrderHTTP_CreateIgnoresClientPricing sends forged prices and totals and
expects the catalog values in the response.
*/
func TestOrderHTTP_CreateIgnoresClientPricing(t *testing.T) {
	f := newFixture(nil, item(1, "Widget", "10"))
	router := newRouter(f)

	recorder := call(t, router, http.MethodPost, "/api/orders", `{
		"customerId": 3,
		"customerName": "Ana",
		"customerEmail": "ana@x.test",
		"items": [
			{"productId": 1, "productName": "Free stuff", "unitPrice": 0.01, "quantity": 2, "lineTotal": 0.02},
			{"productId": 1, "quantity": 3}
		],
		"total": 0.02
	}`)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, float64(1), body["id"])
	assert.Equal(t, float64(3), body["customerId"])
	assert.Equal(t, "Ana", body["customerName"])
	assert.Equal(t, "ana@x.test", body["customerEmail"])
	assert.Equal(t, float64(50), body["total"])
	assert.NotEmpty(t, body["createdAt"])

	items, ok := body["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 2)

	first := items[0].(map[string]any)
	assert.Equal(t, float64(1), first["productId"])
	assert.Equal(t, "Widget", first["productName"])
	assert.Equal(t, float64(10), first["unitPrice"])
	assert.Equal(t, float64(2), first["quantity"])
	assert.Equal(t, float64(20), first["lineTotal"])
	assert.Equal(t, float64(30), items[1].(map[string]any)["lineTotal"])
}

func TestOrderHTTP_Errors(t *testing.T) {
	f := newFixture(nil, item(1, "Widget", "10"))
	router := newRouter(f)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"missing_items", http.MethodPost, "/api/orders", `{"customerId":1,"items":[]}`, http.StatusBadRequest, "Customer and at least one line item required"},
		{"missing_customer", http.MethodPost, "/api/orders", `{"items":[{"productId":1,"quantity":1}]}`, http.StatusBadRequest, "Customer and at least one line item required"},
		{"zero_quantity", http.MethodPost, "/api/orders", `{"customerId":1,"items":[{"productId":1,"quantity":0}]}`, http.StatusBadRequest, "Quantity must be at least 1"},
		{"unknown_product", http.MethodPost, "/api/orders", `{"customerId":1,"items":[{"productId":8,"quantity":1}]}`, http.StatusNotFound, "Product 8 not found"},
		{"unknown_order", http.MethodGet, "/api/orders/77", "", http.StatusNotFound, "Order not found"},
		{"bad_id", http.MethodGet, "/api/orders/x", "", http.StatusBadRequest, "Invalid id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := call(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, recorder.Code)

			var body map[string]any
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body["error"])
		})
	}

	assert.Zero(t, f.orders.writes)
}

func TestOrderHTTP_DeleteAndList(t *testing.T) {
	f := newFixture(nil, item(1, "Widget", "10"))
	router := newRouter(f)

	recorder := call(t, router, http.MethodGet, "/api/orders", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())

	call(t, router, http.MethodPost, "/api/orders", `{"customerId":1,"items":[{"productId":1,"quantity":1}]}`)

	recorder = call(t, router, http.MethodGet, "/api/reports/sales-by-product", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[{"productId":1,"productName":"Widget","quantity":1,"revenue":10,"orders":1}]`, recorder.Body.String())

	for range 2 {
		recorder = call(t, router, http.MethodDelete, "/api/orders/1", "")
		assert.Equal(t, http.StatusNoContent, recorder.Code)
	}

	recorder = call(t, router, http.MethodDelete, "/api/orders/404", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
