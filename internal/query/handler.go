// Package query exposes typed read operations over the current snapshot for
// the HTTP layer. Lookups that miss return a false flag, never an error; a
// store with no snapshot yet behaves like one holding empty collections.
package query

import (
	"github.com/example/commerce-dashboard/internal/dataset"
	"github.com/example/commerce-dashboard/internal/store"
)

type Handler struct {
	store *store.SnapshotStore
}

func NewHandler(store *store.SnapshotStore) *Handler {
	return &Handler{store: store}
}

func (h *Handler) snapshot() *dataset.Snapshot {
	snap, ok := h.store.Snapshot()
	if !ok {
		return &dataset.Snapshot{}
	}
	return snap
}

// Products

func (h *Handler) ListProducts() []dataset.Product {
	return h.snapshot().Products
}

func (h *Handler) GetProduct(id string) (dataset.Product, bool) {
	for _, p := range h.snapshot().Products {
		if p.ID == id {
			return p, true
		}
	}
	return dataset.Product{}, false
}

// Customers

func (h *Handler) ListCustomers() []dataset.Customer {
	return h.snapshot().Customers
}

func (h *Handler) GetCustomer(id string) (dataset.Customer, bool) {
	for _, c := range h.snapshot().Customers {
		if c.ID == id {
			return c, true
		}
	}
	return dataset.Customer{}, false
}

// Orders

// ListOrders returns orders, newest first, optionally filtered by status.
// A limit <= 0 means no limit.
func (h *Handler) ListOrders(status dataset.OrderStatus, limit int) []dataset.Order {
	all := h.snapshot().Orders

	orders := all
	if status != "" {
		orders = make([]dataset.Order, 0, len(all))
		for _, o := range all {
			if o.Status == status {
				orders = append(orders, o)
			}
		}
	}

	if limit > 0 && limit < len(orders) {
		orders = orders[:limit]
	}
	return orders
}

func (h *Handler) GetOrder(id string) (dataset.Order, bool) {
	for _, o := range h.snapshot().Orders {
		if o.ID == id {
			return o, true
		}
	}
	return dataset.Order{}, false
}

// Dashboard projections

// Metrics returns the KPI snapshot; ok is false until a snapshot exists.
func (h *Handler) Metrics() (dataset.Metrics, bool) {
	snap, ok := h.store.Snapshot()
	if !ok {
		return dataset.Metrics{}, false
	}
	return snap.Metrics, true
}

func (h *Handler) RevenueSeries() []dataset.RevenuePoint {
	return h.snapshot().RevenueSeries
}

func (h *Handler) CategorySales() []dataset.CategorySale {
	return h.snapshot().CategorySales
}

func (h *Handler) CustomerGrowth() []dataset.CustomerGrowthPoint {
	return h.snapshot().CustomerGrowth
}
