package session

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kannangrocery/storefront/internal/model"
	"github.com/kannangrocery/storefront/internal/pricing"
)

const (
	// ViewHistoryLimit caps the recently-viewed list
	ViewHistoryLimit = 5

	// OrderIDPrefix marks storefront order identifiers
	OrderIDPrefix = "KAN-"

	// OrderIDSuffixLen is how many uuid characters follow the prefix
	OrderIDSuffixLen = 8
)

// Session holds all state owned by a single storefront run
type Session struct {
	mu sync.RWMutex

	view        ViewState
	selected    model.Product
	hasSelected bool

	cart        []model.CartItem
	viewHistory []model.Product
	orders      []model.Order
	language    model.Language

	onChange func() // callback fired when cart, view history length, or language change
}

// New creates a session in the LOGIN state with an empty cart
func New() *Session {
	return &Session{
		view:     ViewLogin,
		language: model.LanguageEnglish,
	}
}

// SetChangeCallback sets the callback invoked when a recommendation trigger
// fires: cart contents changed, view-history length changed, or the language
// changed.
func (s *Session) SetChangeCallback(callback func()) {
	s.mu.Lock()
	s.onChange = callback
	s.mu.Unlock()
}

func (s *Session) notifyChange() {
	s.mu.RLock()
	callback := s.onChange
	s.mu.RUnlock()
	if callback != nil {
		callback()
	}
}

// View returns the current view state
func (s *Session) View() ViewState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Language returns the current storefront language
func (s *Session) Language() model.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language
}

// ToggleLanguage switches between English and Tamil
func (s *Session) ToggleLanguage() model.Language {
	s.mu.Lock()
	s.language = s.language.Toggle()
	lang := s.language
	s.mu.Unlock()

	s.notifyChange()
	return lang
}

// SetLanguage sets the storefront language
func (s *Session) SetLanguage(lang model.Language) {
	s.mu.Lock()
	changed := s.language != lang
	s.language = lang
	s.mu.Unlock()

	if changed {
		s.notifyChange()
	}
}

// Login leaves the LOGIN state. The gate always succeeds; there is no
// authentication in this app.
func (s *Session) Login() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewLogin {
		log.Printf("Ignoring login from state %s", s.view)
		return
	}
	s.view = ViewHome
}

// GoHome navigates to the home view. A no-op while still on the login gate.
func (s *Session) GoHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == ViewLogin {
		log.Printf("Ignoring home navigation from state %s", s.view)
		return
	}
	s.view = ViewHome
	s.hasSelected = false
}

// ViewProduct opens the detail view for a product and records it in the
// view history (deduplicated by id, most recent first, capped).
func (s *Session) ViewProduct(p model.Product) {
	s.mu.Lock()
	if s.view == ViewLogin {
		s.mu.Unlock()
		log.Printf("Ignoring product view from state %s", s.view)
		return
	}
	s.view = ViewProductDetail
	s.selected = p
	s.hasSelected = true

	before := len(s.viewHistory)
	filtered := s.viewHistory[:0:0]
	for _, seen := range s.viewHistory {
		if seen.ID != p.ID {
			filtered = append(filtered, seen)
		}
	}
	s.viewHistory = append([]model.Product{p}, filtered...)
	if len(s.viewHistory) > ViewHistoryLimit {
		s.viewHistory = s.viewHistory[:ViewHistoryLimit]
	}
	lengthChanged := len(s.viewHistory) != before
	s.mu.Unlock()

	if lengthChanged {
		s.notifyChange()
	}
}

// SelectedProduct returns the product shown on the detail view
func (s *Session) SelectedProduct() (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected, s.hasSelected
}

// ViewHistory returns the recently viewed products, most recent first
func (s *Session) ViewHistory() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := make([]model.Product, len(s.viewHistory))
	copy(history, s.viewHistory)
	return history
}

// OpenCart navigates to the cart view
func (s *Session) OpenCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == ViewLogin {
		log.Printf("Ignoring cart navigation from state %s", s.view)
		return
	}
	s.view = ViewCart
}

// BeginCheckout moves from the cart to the checkout view. A no-op when the
// cart is empty or the cart view is not showing.
func (s *Session) BeginCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewCart || len(s.cart) == 0 {
		log.Printf("Ignoring checkout from state %s with %d cart entries", s.view, len(s.cart))
		return
	}
	s.view = ViewCheckout
}

// BackToCart returns from the checkout form to the cart view
func (s *Session) BackToCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewCheckout {
		log.Printf("Ignoring back-to-cart from state %s", s.view)
		return
	}
	s.view = ViewCart
}

// ContinueShopping leaves the order confirmation back to the home view
func (s *Session) ContinueShopping() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view != ViewSuccess {
		log.Printf("Ignoring continue-shopping from state %s", s.view)
		return
	}
	s.view = ViewHome
}

// AddToCart adds one unit of the product. An existing entry has its quantity
// incremented; order of existing entries is preserved and new entries append
// at the end.
func (s *Session) AddToCart(p model.Product) {
	s.mu.Lock()
	found := false
	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			s.cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		s.cart = append(s.cart, model.CartItem{Product: p, Quantity: 1})
	}
	s.mu.Unlock()

	s.notifyChange()
}

// RemoveFromCart deletes the entry for the given product id. Removing an
// absent id is a no-op.
func (s *Session) RemoveFromCart(id string) {
	s.mu.Lock()
	removed := false
	for i := range s.cart {
		if s.cart[i].Product.ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			removed = true
			break
		}
	}
	s.mu.Unlock()

	if removed {
		s.notifyChange()
	}
}

// UpdateQuantity adjusts the quantity of an entry by delta, clamped so it
// never drops below one. Unknown ids are ignored.
func (s *Session) UpdateQuantity(id string, delta int) {
	s.mu.Lock()
	changed := false
	for i := range s.cart {
		if s.cart[i].Product.ID == id {
			quantity := s.cart[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			changed = s.cart[i].Quantity != quantity
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()

	if changed {
		s.notifyChange()
	}
}

// ClearCart empties the cart
func (s *Session) ClearCart() {
	s.mu.Lock()
	hadItems := len(s.cart) > 0
	s.cart = nil
	s.mu.Unlock()

	if hadItems {
		s.notifyChange()
	}
}

// CartItems returns a copy of the cart entries in insertion order
func (s *Session) CartItems() []model.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]model.CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

// CartCount returns the sum of all quantities in the cart
func (s *Session) CartCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.cart {
		count += item.Quantity
	}
	return count
}

// CartTotals runs the pricing engine over the current cart
func (s *Session) CartTotals() pricing.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return pricing.Calculate(s.cart)
}

// PlaceOrder commits the checkout: it snapshots the cart into an immutable
// order with totals from the pricing engine, prepends it to the order
// history, clears the cart, and moves to the SUCCESS view.
func (s *Session) PlaceOrder(method model.PaymentMethod) (model.Order, error) {
	s.mu.Lock()
	if len(s.cart) == 0 {
		s.mu.Unlock()
		return model.Order{}, fmt.Errorf("cannot place an order with an empty cart")
	}

	items := make([]model.CartItem, len(s.cart))
	copy(items, s.cart)
	totals := pricing.Calculate(items)

	order := model.Order{
		ID:            generateOrderID(),
		CreatedAt:     time.Now(),
		Items:         items,
		Subtotal:      totals.Subtotal,
		Discount:      totals.Discount,
		Shipping:      totals.Shipping,
		Total:         totals.Total,
		Status:        model.OrderStatusProcessing,
		PaymentMethod: method,
	}

	s.orders = append([]model.Order{order}, s.orders...)
	s.cart = nil
	s.view = ViewSuccess
	s.mu.Unlock()

	log.Printf("Order placed: id=%s items=%d total=%.2f method=%s",
		order.ID, len(order.Items), order.Total, order.PaymentMethod)

	s.notifyChange()
	return order, nil
}

// Orders returns the order history, most recent first
func (s *Session) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]model.Order, len(s.orders))
	copy(orders, s.orders)
	return orders
}

// LastOrder returns the most recently placed order
func (s *Session) LastOrder() (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.orders) == 0 {
		return model.Order{}, false
	}
	return s.orders[0], true
}

// generateOrderID generates a short unique order identifier
func generateOrderID() string {
	suffix := strings.ToUpper(uuid.NewString())
	suffix = strings.ReplaceAll(suffix, "-", "")
	return OrderIDPrefix + suffix[:OrderIDSuffixLen]
}
