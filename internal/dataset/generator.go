package dataset

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// Generator produces the base entity collections. The random source and the
// reference time are injected so generations are reproducible in tests.
type Generator struct {
	src   Source
	now   time.Time
	pools Pools
}

// NewGenerator builds a generator over the default pools.
func NewGenerator(src Source, now time.Time) *Generator {
	return &Generator{src: src, now: now, pools: DefaultPools()}
}

// NewGeneratorWithPools builds a generator over caller-supplied pools. Pools
// must be validated before generating.
func NewGeneratorWithPools(src Source, now time.Time, pools Pools) *Generator {
	return &Generator{src: src, now: now, pools: pools}
}

// Products generates count catalog entries with derived stock status and
// stepped .99 pricing between $9.99 and $499.99.
func (g *Generator) Products(count int) []Product {
	products := make([]Product, 0, count)

	for i := 0; i < count; i++ {
		category := pick(g.src, g.pools.Categories)
		baseName := pick(g.src, g.pools.ProductNames[category])
		stock := intBetween(g.src, 0, 200)

		products = append(products, Product{
			ID:          shortID(g.src),
			Name:        fmt.Sprintf("%s #%d", baseName, i+1),
			Description: fmt.Sprintf("High-quality %s for everyday use.", strings.ToLower(baseName)),
			Category:    category,
			Price:       float64(intBetween(g.src, 1, 50))*10 - 0.01,
			Stock:       stock,
			StockStatus: StockStatusFor(stock),
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s/200/200", shortID(g.src)),
			TotalSales:  intBetween(g.src, 0, 500),
			CreatedAt:   dateWithin(g.src, g.now, 12),
		})
	}

	return products
}

// Customers generates count shoppers. Names may repeat across a generation;
// identifiers, not names, guarantee uniqueness. Emails carry a random 1-99
// disambiguator but are not guaranteed unique.
func (g *Generator) Customers(count int) []Customer {
	customers := make([]Customer, 0, count)

	for i := 0; i < count; i++ {
		firstName := pick(g.src, g.pools.FirstNames)
		lastName := pick(g.src, g.pools.LastNames)

		c := Customer{
			ID:     shortID(g.src),
			Name:   firstName + " " + lastName,
			Email:  fmt.Sprintf("%s.%s%d@email.com", strings.ToLower(firstName), strings.ToLower(lastName), intBetween(g.src, 1, 99)),
			Avatar: fmt.Sprintf("https://api.dicebear.com/7.x/avataaars/svg?seed=%s", shortID(g.src)),

			TotalOrders: intBetween(g.src, 1, 30),
			TotalSpent:  float64(intBetween(g.src, 50, 5000)),
			CreatedAt:   dateWithin(g.src, g.now, 18),
		}

		// ~90% of customers have ordered within the trailing 3 months.
		if g.src.Float64() > 0.1 {
			lastOrder := dateWithin(g.src, g.now, 3)
			c.LastOrderAt = &lastOrder
		}

		customers = append(customers, c)
	}

	return customers
}

// Orders generates count orders referencing the given customers and products.
// The result is sorted by creation date descending; sequence numbers in the
// identifiers keep reflecting generation order and are not re-numbered.
func (g *Generator) Orders(count int, customers []Customer, products []Product) []Order {
	orders := make([]Order, 0, count)

	for i := 0; i < count; i++ {
		customer := pick(g.src, customers)
		itemCount := intBetween(g.src, 1, 4)
		items := make([]OrderItem, 0, itemCount)
		total := 0.0

		for j := 0; j < itemCount; j++ {
			product := pick(g.src, products)
			quantity := intBetween(g.src, 1, 3)
			total += product.Price * float64(quantity)

			items = append(items, OrderItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    quantity,
				Price:       product.Price,
			})
		}

		createdAt := dateWithin(g.src, g.now, 12)
		updatedAt := createdAt.Add(time.Duration(intBetween(g.src, 0, 7)) * 24 * time.Hour)

		orders = append(orders, Order{
			ID:            fmt.Sprintf("ORD-%05d", i+1),
			CustomerID:    customer.ID,
			CustomerName:  customer.Name,
			CustomerEmail: customer.Email,
			Items:         items,
			Total:         math.Round(total*100) / 100,
			Status:        weightedPick(g.src, orderStatuses, statusWeights),
			CreatedAt:     createdAt,
			UpdatedAt:     updatedAt,
		})
	}

	sort.Slice(orders, func(a, b int) bool {
		return orders[a].CreatedAt.After(orders[b].CreatedAt)
	})

	return orders
}
