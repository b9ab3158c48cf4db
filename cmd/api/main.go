package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/commerce-dashboard/internal/api"
	"github.com/example/commerce-dashboard/internal/auth"
	"github.com/example/commerce-dashboard/internal/config"
	"github.com/example/commerce-dashboard/internal/dataset"
	"github.com/example/commerce-dashboard/internal/query"
	"github.com/example/commerce-dashboard/internal/store"
)

func main() {
	cfg := config.Load()

	if cfg.JWTSecret == "" {
		log.Fatal("[API] JWT_SECRET environment variable is required")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[API] JWT_SECRET must be at least 32 characters long")
	}

	datasetCfg := dataset.Config{
		Products:  cfg.DatasetProducts,
		Customers: cfg.DatasetCustomers,
		Orders:    cfg.DatasetOrders,
	}
	src := dataset.SystemSource()
	if cfg.DatasetSeed != 0 {
		src = dataset.SeededSource(uint64(cfg.DatasetSeed))
	}

	log.Println("[API] ========================================")
	log.Println("[API] Commerce Dashboard API")
	log.Println("[API] ========================================")
	log.Printf("[API] Dataset: %d products, %d customers, %d orders",
		datasetCfg.Products, datasetCfg.Customers, datasetCfg.Orders)
	log.Printf("[API] Refresh latency: %s", cfg.RefreshLatency)

	// Generate the initial snapshot before accepting traffic.
	snapshots := store.NewSnapshotStore()
	snap, err := dataset.Generate(datasetCfg, src, time.Now())
	if err != nil {
		log.Fatalf("[API] Initial dataset generation failed: %v", err)
	}
	generation := snapshots.Replace(snap)
	log.Printf("[API] Snapshot %d ready: %d products, %d customers, %d orders",
		generation, len(snap.Products), len(snap.Customers), len(snap.Orders))

	refresher := store.NewRefresher(snapshots, datasetCfg, src, cfg.RefreshLatency)

	// Seed the demo admin account.
	users := store.NewUserStore()
	adminHash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("[API] Invalid admin password: %v", err)
	}
	if _, err := users.Create(cfg.AdminEmail, cfg.AdminName, "admin", adminHash); err != nil {
		log.Fatalf("[API] Failed to seed admin user: %v", err)
	}
	log.Printf("[API] Seeded admin account %s", cfg.AdminEmail)

	tokens := auth.NewTokens(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL)

	router := api.NewRouter(api.RouterConfig{
		Handlers:     api.NewHandlers(query.NewHandler(snapshots), refresher, snapshots),
		AuthHandlers: api.NewAuthHandlers(users, tokens),
		Tokens:       tokens,
	})

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: router,
	}

	go func() {
		log.Println("[API] ========================================")
		log.Printf("[API] Server started on %s", cfg.ListenAddr)
		log.Println("[API] ========================================")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("[API] Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[API] Shutting down...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}
