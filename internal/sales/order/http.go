// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/salesdesk/internal/platform/request"
	"github.com/taibuivan/salesdesk/internal/platform/respond"
)

// # Definitions & Constructors

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the order endpoints.
//
// # Endpoints
//   - GET    /     : All orders, newest first.
//   - POST   /     : Prices and records an order.
//   - GET    /{id} : One order.
//   - DELETE /{id} : Removes an order; unknown ids still return 204.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listOrders)
	router.Post("/", handler.createOrder)
	router.Get("/{id}", handler.getOrder)
	router.Delete("/{id}", handler.deleteOrder)
}

// RegisterReportRoutes mounts the reporting endpoints.
func (handler *Handler) RegisterReportRoutes(router chi.Router) {
	router.Get("/sales-by-product", handler.salesByProduct)
}

// # Handlers

func (handler *Handler) listOrders(writer http.ResponseWriter, request *http.Request) {
	orders, err := handler.service.ListOrders(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, orders)
}

/*
createOrder records a sale.

POST /api/orders

Client-supplied unit prices, product names and totals are ignored.

Response:
  - 201: The persisted order
  - 400: Missing customer or items, or a quantity below 1
  - 404: A requested product does not exist
*/
func (handler *Handler) createOrder(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.service.CreateOrder(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, order)
}

func (handler *Handler) getOrder(writer http.ResponseWriter, request *http.Request) {
	orderID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.service.GetOrder(request.Context(), orderID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, order)
}

func (handler *Handler) deleteOrder(writer http.ResponseWriter, request *http.Request) {
	orderID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteOrder(request.Context(), orderID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) salesByProduct(writer http.ResponseWriter, request *http.Request) {
	summary, err := handler.service.SalesByProduct(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.List(writer, summary)
}
