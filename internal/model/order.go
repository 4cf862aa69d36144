package model

import "time"

// OrderStatus represents the fulfilment state of a placed order
type OrderStatus string

const (
	// OrderStatusProcessing means the order was placed and is being prepared
	OrderStatusProcessing OrderStatus = "Processing"

	// OrderStatusShipped means the order left the store
	OrderStatusShipped OrderStatus = "Shipped"

	// OrderStatusDelivered means the order reached the customer
	OrderStatusDelivered OrderStatus = "Delivered"
)

// String returns the string representation of OrderStatus
func (os OrderStatus) String() string {
	return string(os)
}

// PaymentMethod is the payment option chosen at checkout
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// String returns the string representation of PaymentMethod
func (pm PaymentMethod) String() string {
	return string(pm)
}

// Order is an immutable snapshot created when checkout completes. Totals are
// the pricing engine output computed from Items at creation time and are
// never recomputed afterwards.
type Order struct {
	ID            string
	CreatedAt     time.Time
	Items         []CartItem
	Subtotal      float64
	Discount      float64
	Shipping      float64
	Total         float64
	Status        OrderStatus
	PaymentMethod PaymentMethod
}

// ItemCount returns the sum of all quantities in the order
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
