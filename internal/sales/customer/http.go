// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package customer

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/salesdesk/internal/platform/request"
	"github.com/taibuivan/salesdesk/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the customer endpoints. Callers are expected to
// wrap the router in authentication.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listCustomers)
	router.Post("/", handler.createCustomer)
	router.Get("/{id}", handler.getCustomer)
	router.Put("/{id}", handler.updateCustomer)
	router.Delete("/{id}", handler.deleteCustomer)
}

func (handler *Handler) listCustomers(writer http.ResponseWriter, request *http.Request) {
	customers, err := handler.service.ListCustomers(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, customers)
}

func (handler *Handler) getCustomer(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	customer, err := handler.service.GetCustomer(request.Context(), customerID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, customer)
}

func (handler *Handler) createCustomer(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	customer, err := handler.service.CreateCustomer(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, customer)
}

func (handler *Handler) updateCustomer(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	customer, err := handler.service.UpdateCustomer(request.Context(), customerID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, customer)
}

func (handler *Handler) deleteCustomer(writer http.ResponseWriter, request *http.Request) {
	customerID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCustomer(request.Context(), customerID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
