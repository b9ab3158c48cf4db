package dataset

import "time"

// OrderStatus is the lifecycle state of a generated order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses.
func ValidStatus(s OrderStatus) bool {
	for _, known := range orderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// StockStatus classifies a product's remaining inventory.
type StockStatus string

const (
	StockInStock StockStatus = "in_stock"
	StockLow     StockStatus = "low_stock"
	StockOut     StockStatus = "out_of_stock"
)

// StockStatusFor derives the stock classification from a unit count. The
// classification is always re-derived from stock, never stored independently.
func StockStatusFor(stock int) StockStatus {
	switch {
	case stock == 0:
		return StockOut
	case stock < 20:
		return StockLow
	default:
		return StockInStock
	}
}

// Product is a catalog entry.
type Product struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Price       float64     `json:"price"`
	Stock       int         `json:"stock"`
	StockStatus StockStatus `json:"stock_status"`
	ImageURL    string      `json:"image_url"`
	TotalSales  int         `json:"total_sales"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Customer is a registered shopper. TotalOrders and TotalSpent are sampled
// summary figures and are not reconciled with the generated orders.
type Customer struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Avatar      string     `json:"avatar"`
	TotalOrders int        `json:"total_orders"`
	TotalSpent  float64    `json:"total_spent"`
	CreatedAt   time.Time  `json:"created_at"`
	LastOrderAt *time.Time `json:"last_order_at,omitempty"`
}

// OrderItem is a line item owned by exactly one order. Name and price are
// denormalized from the product at generation time.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Order references one customer and one to four line items. The sequence
// number embedded in the ID reflects generation order, not chronological
// order; the collection as a whole is sorted newest first.
type Order struct {
	ID            string      `json:"id"`
	CustomerID    string      `json:"customer_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Items         []OrderItem `json:"items"`
	Total         float64     `json:"total"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// Metrics is the point-in-time dashboard KPI snapshot. Growth figures compare
// the current calendar month to the previous one.
type Metrics struct {
	TotalRevenue        float64 `json:"total_revenue"`
	RevenueGrowth       float64 `json:"revenue_growth"`
	TotalOrders         int     `json:"total_orders"`
	OrdersGrowth        float64 `json:"orders_growth"`
	TotalCustomers      int     `json:"total_customers"`
	CustomersGrowth     float64 `json:"customers_growth"`
	AvgOrderValue       float64 `json:"avg_order_value"`
	AvgOrderValueGrowth float64 `json:"avg_order_value_growth"`
}

// RevenuePoint is one calendar-month bucket of the revenue/orders trend.
// Revenue is rounded to whole currency units for display.
type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
	Orders  int    `json:"orders"`
}

// CategorySale is the accumulated sales of one product category and its
// rounded share of the grand total.
type CategorySale struct {
	Category   string `json:"category"`
	Sales      int    `json:"sales"`
	Percentage int    `json:"percentage"`
}

// CustomerGrowthPoint is one calendar-month bucket of new vs. returning
// customers. Returning counts are simulated, not derived from orders.
type CustomerGrowthPoint struct {
	Month              string `json:"month"`
	NewCustomers       int    `json:"new_customers"`
	ReturningCustomers int    `json:"returning_customers"`
}
