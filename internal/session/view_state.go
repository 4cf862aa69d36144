package session

// ViewState represents which page of the storefront is shown
type ViewState string

const (
	// ViewLogin is the initial state; it is left once and never re-entered
	ViewLogin ViewState = "LOGIN"

	// ViewHome shows the catalog grid and the recommendation panel
	ViewHome ViewState = "HOME"

	// ViewProductDetail shows a single product page
	ViewProductDetail ViewState = "PRODUCT_DETAIL"

	// ViewCart shows the cart contents and totals summary
	ViewCart ViewState = "CART"

	// ViewCheckout shows the shipping form and payment selection
	ViewCheckout ViewState = "CHECKOUT"

	// ViewSuccess confirms a placed order
	ViewSuccess ViewState = "SUCCESS"
)

// String returns the string representation of ViewState
func (vs ViewState) String() string {
	return string(vs)
}
