package dataset

import (
	"errors"
	"fmt"
)

var ErrEmptyPool = errors.New("pool must not be empty")

// Pools holds the fixed vocabularies the generators sample from. The built-in
// defaults are always valid; Validate exists so a future caller supplying
// custom pools fails fast instead of producing corrupted data.
type Pools struct {
	FirstNames   []string
	LastNames    []string
	Categories   []string
	ProductNames map[string][]string
}

func (p Pools) Validate() error {
	if len(p.FirstNames) == 0 {
		return fmt.Errorf("%w: first names", ErrEmptyPool)
	}
	if len(p.LastNames) == 0 {
		return fmt.Errorf("%w: last names", ErrEmptyPool)
	}
	if len(p.Categories) == 0 {
		return fmt.Errorf("%w: categories", ErrEmptyPool)
	}
	for _, category := range p.Categories {
		if len(p.ProductNames[category]) == 0 {
			return fmt.Errorf("%w: product names for category %q", ErrEmptyPool, category)
		}
	}
	return nil
}

// DefaultPools returns the built-in sampling vocabularies.
func DefaultPools() Pools {
	return Pools{
		FirstNames:   defaultFirstNames,
		LastNames:    defaultLastNames,
		Categories:   defaultCategories,
		ProductNames: defaultProductNames,
	}
}

var defaultFirstNames = []string{
	"James", "Emma", "Oliver", "Ava", "William", "Sophia", "Benjamin", "Isabella",
	"Lucas", "Mia", "Henry", "Charlotte", "Alexander", "Amelia", "Michael", "Harper",
	"Ethan", "Evelyn", "Daniel", "Abigail", "Matthew", "Emily", "Aiden", "Elizabeth",
	"Joseph", "Sofia", "Jackson", "Avery", "Sebastian", "Ella", "David", "Madison",
}

var defaultLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson",
	"Thomas", "Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson",
	"White", "Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker",
}

var defaultCategories = []string{
	"Electronics", "Clothing", "Home & Garden", "Sports", "Books", "Beauty",
}

var defaultProductNames = map[string][]string{
	"Electronics": {
		"Wireless Earbuds Pro", "Smart Watch Ultra", "4K Webcam", "Bluetooth Speaker",
		"Gaming Mouse", "Mechanical Keyboard", "USB-C Hub", "Portable SSD 1TB",
		"Noise Canceling Headphones", "Smart Home Hub", "Wireless Charger Pad", "Action Camera",
	},
	"Clothing": {
		"Premium Cotton T-Shirt", "Slim Fit Jeans", "Wool Blend Sweater", "Running Shoes",
		"Leather Jacket", "Casual Sneakers", "Dress Shirt", "Winter Coat",
		"Sport Leggings", "Denim Jacket", "Silk Scarf", "Canvas Backpack",
	},
	"Home & Garden": {
		"Smart LED Bulbs (4-pack)", "Robot Vacuum", "Air Purifier", "Indoor Plant Set",
		"Memory Foam Pillow", "Weighted Blanket", "Kitchen Scale", "Coffee Maker",
		"Knife Set", "Cast Iron Pan", "Bed Sheet Set", "Bathroom Organizer",
	},
	"Sports": {
		"Yoga Mat Premium", "Resistance Bands Set", "Dumbbells 20lb Pair", "Jump Rope",
		"Foam Roller", "Water Bottle 32oz", "Gym Bag", "Running Belt",
		"Fitness Tracker", "Tennis Racket", "Basketball", "Camping Tent",
	},
	"Books": {
		"Best Seller Novel", "Self-Help Guide", "Cookbook Collection", "Business Strategy",
		"Sci-Fi Trilogy", "History Encyclopedia", "Art & Design Book", "Travel Guide",
		"Biography Memoir", "Children Picture Book", "Poetry Anthology", "Technical Manual",
	},
	"Beauty": {
		"Skincare Set", "Perfume Eau de Parfum", "Makeup Brush Set", "Hair Dryer Pro",
		"Face Serum", "Body Lotion", "Nail Polish Set", "Electric Shaver",
		"Facial Cleansing Device", "Hair Styling Tool", "Lip Care Kit", "Sun Protection SPF50",
	},
}

var orderStatuses = []OrderStatus{
	StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled,
}

// statusWeights are the sampling probabilities for orderStatuses, in order.
var statusWeights = []float64{0.1, 0.15, 0.2, 0.5, 0.05}
