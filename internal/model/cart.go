package model

// CartItem is a product plus a quantity. Quantity is always >= 1; cart
// operations clamp rather than allowing zero or negative values. Identity is
// the product ID — a cart never holds two entries for the same product.
type CartItem struct {
	Product  Product
	Quantity int
}

// LineTotal returns unit price times quantity for this entry
func (ci CartItem) LineTotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}
