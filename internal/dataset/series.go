package dataset

import (
	"math"
	"sort"
	"time"
)

const seriesMonths = 12

// monthBuckets yields the trailing 12 calendar-month intervals ending with
// now's month, oldest first. Each interval is [start, end).
func monthBuckets(now time.Time) []time.Time {
	starts := make([]time.Time, 0, seriesMonths+1)
	for i := seriesMonths - 1; i >= -1; i-- {
		starts = append(starts, time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location()))
	}
	return starts
}

// RevenueSeries sums non-cancelled order totals and counts per trailing
// calendar month. The series always contains exactly 12 buckets ending with
// the current month, regardless of the order count.
func RevenueSeries(orders []Order, now time.Time) []RevenuePoint {
	starts := monthBuckets(now)
	points := make([]RevenuePoint, 0, seriesMonths)

	for i := 0; i < seriesMonths; i++ {
		start, end := starts[i], starts[i+1]

		revenue := 0.0
		count := 0
		for _, o := range orders {
			if o.Status == StatusCancelled {
				continue
			}
			if o.CreatedAt.Before(start) || !o.CreatedAt.Before(end) {
				continue
			}
			revenue += o.Total
			count++
		}

		points = append(points, RevenuePoint{
			Month:   start.Format("Jan"),
			Revenue: int(math.Round(revenue)),
			Orders:  count,
		})
	}

	return points
}

// CategorySalesSeries accumulates line-item sales per product category across
// all non-cancelled orders, sorted by sales descending. Items referencing an
// unknown product id contribute nothing. Each category's percentage share is
// rounded independently; with zero total sales all shares are 0.
func CategorySalesSeries(orders []Order, products []Product) []CategorySale {
	byID := make(map[string]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	salesByCategory := make(map[string]float64)
	for _, o := range orders {
		if o.Status == StatusCancelled {
			continue
		}
		for _, item := range o.Items {
			product, ok := byID[item.ProductID]
			if !ok {
				continue
			}
			salesByCategory[product.Category] += item.Price * float64(item.Quantity)
		}
	}

	total := 0.0
	for _, sales := range salesByCategory {
		total += sales
	}

	result := make([]CategorySale, 0, len(salesByCategory))
	for category, sales := range salesByCategory {
		percentage := 0
		if total > 0 {
			percentage = int(math.Round(sales / total * 100))
		}
		result = append(result, CategorySale{
			Category:   category,
			Sales:      int(math.Round(sales)),
			Percentage: percentage,
		})
	}

	sort.Slice(result, func(a, b int) bool {
		if result[a].Sales != result[b].Sales {
			return result[a].Sales > result[b].Sales
		}
		return result[a].Category < result[b].Category
	})

	return result
}

// CustomerGrowthSeries counts new customers per trailing calendar month and
// simulates a returning-customer figure as a uniform 60-80% fraction of each
// bucket's new-customer count, sampled independently per bucket.
func CustomerGrowthSeries(src Source, customers []Customer, now time.Time) []CustomerGrowthPoint {
	starts := monthBuckets(now)
	points := make([]CustomerGrowthPoint, 0, seriesMonths)

	for i := 0; i < seriesMonths; i++ {
		start, end := starts[i], starts[i+1]

		newCustomers := 0
		for _, c := range customers {
			if !c.CreatedAt.Before(start) && c.CreatedAt.Before(end) {
				newCustomers++
			}
		}

		returning := int(math.Floor(float64(newCustomers) * (0.6 + src.Float64()*0.2)))

		points = append(points, CustomerGrowthPoint{
			Month:              start.Format("Jan"),
			NewCustomers:       newCustomers,
			ReturningCustomers: returning,
		})
	}

	return points
}
