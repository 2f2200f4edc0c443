// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package customer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/salesdesk/internal/sales/customer"
)

func newRouter() http.Handler {
	service, _ := newService()
	router := chi.NewRouter()
	router.Route("/api/customers", customer.NewHandler(service).RegisterRoutes)
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
TestCustomerHTTP_CRUD walks a customer through create, read, update and delete.
*/
func TestCustomerHTTP_CRUD(t *testing.T) {
	router := newRouter()

	recorder := call(t, router, http.MethodPost, "/api/customers", `{"name":"Ana","email":"ana@x.test","phone":"555"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "555", created["phone"])
	assert.Nil(t, created["company"])
	assert.Contains(t, created, "createdAt")

	recorder = call(t, router, http.MethodGet, "/api/customers", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(recorder.Body.String()), "["))

	recorder = call(t, router, http.MethodPut, "/api/customers/1", `{"name":"Ana B","email":"ana@x.test"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"name":"Ana B"`)

	recorder = call(t, router, http.MethodDelete, "/api/customers/1", "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder = call(t, router, http.MethodGet, "/api/customers/1", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Customer not found")
}

func TestCustomerHTTP_Errors(t *testing.T) {
	router := newRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"empty_list_is_array", http.MethodGet, "/api/customers", "", http.StatusOK},
		{"missing_email", http.MethodPost, "/api/customers", `{"name":"Ana"}`, http.StatusBadRequest},
		{"bad_json", http.MethodPost, "/api/customers", `{`, http.StatusBadRequest},
		{"non_numeric_id", http.MethodGet, "/api/customers/abc", "", http.StatusBadRequest},
		{"update_unknown", http.MethodPut, "/api/customers/7", `{"name":"A","email":"a@x.test"}`, http.StatusNotFound},
		{"delete_unknown", http.MethodDelete, "/api/customers/7", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := call(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, recorder.Code, recorder.Body.String())
		})
	}

	recorder := call(t, router, http.MethodGet, "/api/customers", "")
	assert.JSONEq(t, `[]`, recorder.Body.String())
}
