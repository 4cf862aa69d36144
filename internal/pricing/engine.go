package pricing

import "github.com/kannangrocery/storefront/internal/model"

// Discount tiers by total item quantity
const (
	BulkTierSmall     = 3
	BulkTierLarge     = 5
	BulkRateSmall     = 0.05
	BulkRateLarge     = 0.10
	FlatShippingPrice = 40.0
)

// Totals holds the computed breakdown for a cart. Values are exact
// (unrounded); presentation layers format to two decimal places.
type Totals struct {
	Subtotal      float64
	DiscountRate  float64
	Discount      float64
	Shipping      float64
	Total         float64
	TotalQuantity int
}

// Calculate computes totals for the given cart items.
//
// The grand total always includes shipping: shipping is the flat rate when
// the subtotal is positive and zero for an empty cart.
func Calculate(items []model.CartItem) Totals {
	var t Totals
	for _, item := range items {
		t.TotalQuantity += item.Quantity
		t.Subtotal += item.LineTotal()
	}

	switch {
	case t.TotalQuantity >= BulkTierLarge:
		t.DiscountRate = BulkRateLarge
	case t.TotalQuantity >= BulkTierSmall:
		t.DiscountRate = BulkRateSmall
	}

	t.Discount = t.Subtotal * t.DiscountRate
	if t.Subtotal > 0 {
		t.Shipping = FlatShippingPrice
	}
	t.Total = t.Subtotal - t.Discount + t.Shipping
	return t
}
