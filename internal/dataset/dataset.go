// Package dataset generates a self-consistent synthetic commerce dataset
// (products, customers, orders) and derives the dashboard projections
// (metrics, monthly series) from it. Generation is pure in-memory
// computation: a snapshot is produced whole or not at all.
package dataset

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidConfig = errors.New("invalid dataset configuration")

// Config controls the size of a generated dataset. Zero counts are valid and
// yield empty collections with zero-valued projections.
type Config struct {
	Products  int
	Customers int
	Orders    int
}

// DefaultConfig returns the standard dashboard dataset sizes.
func DefaultConfig() Config {
	return Config{Products: 100, Customers: 200, Orders: 500}
}

func (c Config) validate() error {
	if c.Products < 0 || c.Customers < 0 || c.Orders < 0 {
		return fmt.Errorf("%w: counts must be >= 0 (products=%d customers=%d orders=%d)",
			ErrInvalidConfig, c.Products, c.Customers, c.Orders)
	}
	if c.Orders > 0 && (c.Products == 0 || c.Customers == 0) {
		return fmt.Errorf("%w: generating %d orders requires at least one product and one customer",
			ErrInvalidConfig, c.Orders)
	}
	return nil
}

// Snapshot is one complete, internally consistent generation. Consumers treat
// it as immutable and replace it wholesale on refresh.
type Snapshot struct {
	Products       []Product             `json:"products"`
	Customers      []Customer            `json:"customers"`
	Orders         []Order               `json:"orders"`
	Metrics        Metrics               `json:"metrics"`
	RevenueSeries  []RevenuePoint        `json:"revenue_series"`
	CategorySales  []CategorySale        `json:"category_sales"`
	CustomerGrowth []CustomerGrowthPoint `json:"customer_growth"`
	GeneratedAt    time.Time             `json:"generated_at"`
}

// Generate builds a full snapshot in strict dependency order: products and
// customers first, then orders referencing them, then the derived metrics and
// series. The only failure mode is an invalid configuration; valid
// configurations always produce a complete snapshot.
func Generate(cfg Config, src Source, now time.Time) (*Snapshot, error) {
	return GenerateWithPools(cfg, src, now, DefaultPools())
}

// GenerateWithPools is Generate over caller-supplied sampling pools.
func GenerateWithPools(cfg Config, src Source, now time.Time, pools Pools) (*Snapshot, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if err := pools.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	g := NewGeneratorWithPools(src, now, pools)

	products := g.Products(cfg.Products)
	customers := g.Customers(cfg.Customers)
	orders := g.Orders(cfg.Orders, customers, products)

	return &Snapshot{
		Products:       products,
		Customers:      customers,
		Orders:         orders,
		Metrics:        ComputeMetrics(orders, customers, now),
		RevenueSeries:  RevenueSeries(orders, now),
		CategorySales:  CategorySalesSeries(orders, products),
		CustomerGrowth: CustomerGrowthSeries(src, customers, now),
		GeneratedAt:    now,
	}, nil
}
