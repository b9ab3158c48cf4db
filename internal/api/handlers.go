package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/example/commerce-dashboard/internal/api/middleware"
	"github.com/example/commerce-dashboard/internal/dataset"
	"github.com/example/commerce-dashboard/internal/query"
	"github.com/example/commerce-dashboard/internal/store"
)

// Handlers serves the dashboard read endpoints and the refresh trigger.
type Handlers struct {
	query     *query.Handler
	refresher *store.Refresher
	snapshots *store.SnapshotStore
}

func NewHandlers(queryHandler *query.Handler, refresher *store.Refresher, snapshots *store.SnapshotStore) *Handlers {
	return &Handlers{
		query:     queryHandler,
		refresher: refresher,
		snapshots: snapshots,
	}
}

// Dashboard Handlers

func (h *Handlers) GetMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, ok := h.query.Metrics()
	if !ok {
		respondJSONError(w, "No dataset generated yet", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

func (h *Handlers) GetRevenueSeries(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.query.RevenueSeries())
}

func (h *Handlers) GetCategorySales(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.query.CategorySales())
}

func (h *Handlers) GetCustomerGrowth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.query.CustomerGrowth())
}

// Product Handlers

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.query.ListProducts())
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/products/")
	product, ok := h.query.GetProduct(id)
	if !ok {
		respondJSONError(w, "Product not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// Customer Handlers

func (h *Handlers) GetCustomers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.query.ListCustomers())
}

func (h *Handlers) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/customers/")
	customer, ok := h.query.GetCustomer(id)
	if !ok {
		respondJSONError(w, "Customer not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

// Order Handlers

func (h *Handlers) GetOrders(w http.ResponseWriter, r *http.Request) {
	status := dataset.OrderStatus(r.URL.Query().Get("status"))
	if status != "" && !dataset.ValidStatus(status) {
		respondJSONError(w, "Unknown order status", http.StatusBadRequest)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			respondJSONError(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	respondJSON(w, http.StatusOK, h.query.ListOrders(status, limit))
}

func (h *Handlers) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := extractPathParam(r.URL.Path, "/orders/")
	order, ok := h.query.GetOrder(id)
	if !ok {
		respondJSONError(w, "Order not found", http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

// Refresh regenerates the whole dataset. Concurrent triggers coalesce: while
// one refresh runs, further requests are acknowledged with 202.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	generation, err := h.refresher.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrRefreshInFlight) {
			respondJSON(w, http.StatusAccepted, map[string]string{
				"message": "Refresh already in progress",
			})
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return
		}
		middleware.RecordRefresh(false)
		respondJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.RecordRefresh(true)
	middleware.SetSnapshotGeneration(generation)
	respondJSON(w, http.StatusOK, map[string]any{
		"message":    "Dataset refreshed",
		"generation": generation,
	})
}

// Health reports liveness and whether a snapshot is being served.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"generation": h.snapshots.Generation(),
	})
}
