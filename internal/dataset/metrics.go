package dataset

import "time"

// monthStart returns the first instant of t's calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// growth returns the period-over-period percentage change, zero-guarded when
// the prior period's value is zero.
func growth(current, previous float64) float64 {
	if previous > 0 {
		return (current - previous) / previous * 100
	}
	return 0
}

// ComputeMetrics derives the dashboard KPI snapshot from the full order and
// customer collections. Month boundaries are anchored to now, not to the
// data's own timestamp range. Cancelled orders are excluded from all revenue
// and order-count figures.
func ComputeMetrics(orders []Order, customers []Customer, now time.Time) Metrics {
	thisMonthStart := monthStart(now)
	lastMonthStart := thisMonthStart.AddDate(0, -1, 0)

	var (
		totalRevenue     float64
		totalOrders      int
		thisMonthRevenue float64
		thisMonthOrders  int
		lastMonthRevenue float64
		lastMonthOrders  int
	)

	for _, o := range orders {
		if o.Status == StatusCancelled {
			continue
		}
		totalRevenue += o.Total
		totalOrders++

		switch {
		case !o.CreatedAt.Before(thisMonthStart):
			thisMonthRevenue += o.Total
			thisMonthOrders++
		case !o.CreatedAt.Before(lastMonthStart):
			lastMonthRevenue += o.Total
			lastMonthOrders++
		}
	}

	var thisMonthCustomers, lastMonthCustomers int
	for _, c := range customers {
		switch {
		case !c.CreatedAt.Before(thisMonthStart):
			thisMonthCustomers++
		case !c.CreatedAt.Before(lastMonthStart):
			lastMonthCustomers++
		}
	}

	avgOrderValue := 0.0
	if totalOrders > 0 {
		avgOrderValue = totalRevenue / float64(totalOrders)
	}
	thisMonthAvg := 0.0
	if thisMonthOrders > 0 {
		thisMonthAvg = thisMonthRevenue / float64(thisMonthOrders)
	}
	lastMonthAvg := 0.0
	if lastMonthOrders > 0 {
		lastMonthAvg = lastMonthRevenue / float64(lastMonthOrders)
	}

	return Metrics{
		TotalRevenue:        totalRevenue,
		RevenueGrowth:       growth(thisMonthRevenue, lastMonthRevenue),
		TotalOrders:         totalOrders,
		OrdersGrowth:        growth(float64(thisMonthOrders), float64(lastMonthOrders)),
		TotalCustomers:      len(customers),
		CustomersGrowth:     growth(float64(thisMonthCustomers), float64(lastMonthCustomers)),
		AvgOrderValue:       avgOrderValue,
		AvgOrderValueGrowth: growth(thisMonthAvg, lastMonthAvg),
	}
}
