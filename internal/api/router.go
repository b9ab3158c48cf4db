package api

import (
	"net/http"

	"github.com/example/commerce-dashboard/internal/api/middleware"
	"github.com/example/commerce-dashboard/internal/auth"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig carries the handler sets and the token service gating the
// dashboard routes.
type RouterConfig struct {
	Handlers     *Handlers
	AuthHandlers *AuthHandlers
	Tokens       *auth.Tokens
}

func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	authed := middleware.Auth(cfg.Tokens)

	// Health and observability (unauthenticated)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cfg.Handlers.Health(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.Handle("/metrics", promhttp.Handler())

	// Auth
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			cfg.AuthHandlers.Register(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			cfg.AuthHandlers.Login(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			cfg.AuthHandlers.Refresh(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			cfg.AuthHandlers.Logout(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	mux.Handle("/auth/me", authed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cfg.AuthHandlers.Me(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	// Dashboard projections
	mux.Handle("/dashboard/metrics", authed(getOnly(cfg.Handlers.GetMetrics)))
	mux.Handle("/dashboard/revenue", authed(getOnly(cfg.Handlers.GetRevenueSeries)))
	mux.Handle("/dashboard/category-sales", authed(getOnly(cfg.Handlers.GetCategorySales)))
	mux.Handle("/dashboard/customer-growth", authed(getOnly(cfg.Handlers.GetCustomerGrowth)))

	// Collections
	mux.Handle("/products", authed(getOnly(cfg.Handlers.GetProducts)))
	mux.Handle("/products/", authed(getOnly(cfg.Handlers.GetProduct)))
	mux.Handle("/customers", authed(getOnly(cfg.Handlers.GetCustomers)))
	mux.Handle("/customers/", authed(getOnly(cfg.Handlers.GetCustomer)))
	mux.Handle("/orders", authed(getOnly(cfg.Handlers.GetOrders)))
	mux.Handle("/orders/", authed(getOnly(cfg.Handlers.GetOrder)))

	// Regeneration trigger
	mux.Handle("/refresh", authed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			cfg.Handlers.Refresh(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})))

	return middleware.Logging(middleware.Metrics(mux))
}

func getOnly(handler http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handler(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
}
