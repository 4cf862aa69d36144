package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kannangrocery/storefront/internal/model"
	"github.com/kannangrocery/storefront/internal/pricing"
)

func product(id string, price float64) model.Product {
	return model.Product{ID: id, Name: model.LocalizedText{Default: id}, Price: price}
}

func loggedIn() *Session {
	s := New()
	s.Login()
	return s
}

func TestAddToCart_MergesByProductID(t *testing.T) {
	s := loggedIn()
	p := product("toor-dal-1kg", 179)

	s.AddToCart(p)
	s.AddToCart(p)

	items := s.CartItems()
	require.Len(t, items, 1, "same product twice must yield one entry")
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCart_PreservesOrder(t *testing.T) {
	s := loggedIn()
	s.AddToCart(product("a", 10))
	s.AddToCart(product("b", 20))
	s.AddToCart(product("a", 10))
	s.AddToCart(product("c", 30))

	items := s.CartItems()
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Product.ID)
	assert.Equal(t, "b", items[1].Product.ID)
	assert.Equal(t, "c", items[2].Product.ID)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	s := loggedIn()
	s.AddToCart(product("a", 10))
	s.AddToCart(product("b", 20))

	s.RemoveFromCart("a")
	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0].Product.ID)

	// Removing an absent id leaves the cart unchanged
	s.RemoveFromCart("no-such-id")
	assert.Len(t, s.CartItems(), 1)
}

func TestUpdateQuantity_ClampsAtOne(t *testing.T) {
	s := loggedIn()
	s.AddToCart(product("a", 10))

	s.UpdateQuantity("a", 4)
	assert.Equal(t, 5, s.CartItems()[0].Quantity)

	s.UpdateQuantity("a", -100)
	assert.Equal(t, 1, s.CartItems()[0].Quantity, "quantity must clamp at 1")

	s.UpdateQuantity("a", -1)
	assert.Equal(t, 1, s.CartItems()[0].Quantity)

	// Unknown id is ignored
	s.UpdateQuantity("no-such-id", 3)
	assert.Len(t, s.CartItems(), 1)
}

func TestCartCount(t *testing.T) {
	s := loggedIn()
	assert.Equal(t, 0, s.CartCount())

	s.AddToCart(product("a", 10))
	s.AddToCart(product("b", 20))
	s.UpdateQuantity("b", 2)

	assert.Equal(t, 4, s.CartCount())
}

func TestViewHistory_DedupAndCap(t *testing.T) {
	s := loggedIn()

	for _, id := range []string{"a", "b", "c", "b", "d", "e", "f", "g"} {
		s.ViewProduct(product(id, 10))
	}

	history := s.ViewHistory()
	require.Len(t, history, ViewHistoryLimit)

	// Most recent first, deduplicated
	assert.Equal(t, "g", history[0].ID)
	assert.Equal(t, "f", history[1].ID)
	assert.Equal(t, "e", history[2].ID)
	assert.Equal(t, "d", history[3].ID)
	assert.Equal(t, "b", history[4].ID)
}

func TestViewProduct_ReviewMovesToFront(t *testing.T) {
	s := loggedIn()
	s.ViewProduct(product("a", 10))
	s.ViewProduct(product("b", 10))
	s.ViewProduct(product("a", 10))

	history := s.ViewHistory()
	require.Len(t, history, 2)
	assert.Equal(t, "a", history[0].ID)
	assert.Equal(t, "b", history[1].ID)
}

func TestPlaceOrder_SnapshotsTotalsAndClearsCart(t *testing.T) {
	s := loggedIn()
	s.AddToCart(product("a", 50))
	s.UpdateQuantity("a", 2) // qty 3 → 5% tier

	expected := pricing.Calculate(s.CartItems())

	s.OpenCart()
	s.BeginCheckout()

	order, err := s.PlaceOrder(model.PaymentMethodUPI)
	require.NoError(t, err)

	assert.Equal(t, expected.Subtotal, order.Subtotal)
	assert.Equal(t, expected.Discount, order.Discount)
	assert.Equal(t, expected.Shipping, order.Shipping)
	assert.Equal(t, expected.Total, order.Total)
	assert.Equal(t, model.OrderStatusProcessing, order.Status)
	assert.Equal(t, model.PaymentMethodUPI, order.PaymentMethod)
	assert.Contains(t, order.ID, OrderIDPrefix)

	assert.Empty(t, s.CartItems(), "cart must be cleared after placing an order")
	assert.Equal(t, ViewSuccess, s.View())
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	s := loggedIn()
	_, err := s.PlaceOrder(model.PaymentMethodCard)
	assert.Error(t, err)
	assert.Empty(t, s.Orders())
}

func TestOrders_MostRecentFirst(t *testing.T) {
	s := loggedIn()

	s.AddToCart(product("a", 10))
	first, err := s.PlaceOrder(model.PaymentMethodCard)
	require.NoError(t, err)

	s.AddToCart(product("b", 20))
	second, err := s.PlaceOrder(model.PaymentMethodCOD)
	require.NoError(t, err)

	orders := s.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)

	last, ok := s.LastOrder()
	require.True(t, ok)
	assert.Equal(t, second.ID, last.ID)
}

func TestOrder_ImmutableSnapshot(t *testing.T) {
	s := loggedIn()
	s.AddToCart(product("a", 10))
	order, err := s.PlaceOrder(model.PaymentMethodCard)
	require.NoError(t, err)

	// Later cart activity must not affect the placed order
	s.AddToCart(product("b", 99))
	stored := s.Orders()[0]
	assert.Equal(t, order.Total, stored.Total)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "a", stored.Items[0].Product.ID)
}

func TestViewStateMachine(t *testing.T) {
	s := New()
	assert.Equal(t, ViewLogin, s.View())

	// Navigation before login is ignored
	s.GoHome()
	assert.Equal(t, ViewLogin, s.View())

	s.Login()
	assert.Equal(t, ViewHome, s.View())

	// Login is terminal-exit-only
	s.Login()
	assert.Equal(t, ViewHome, s.View())

	s.ViewProduct(product("a", 10))
	assert.Equal(t, ViewProductDetail, s.View())
	selected, ok := s.SelectedProduct()
	require.True(t, ok)
	assert.Equal(t, "a", selected.ID)

	s.OpenCart()
	assert.Equal(t, ViewCart, s.View())

	// Empty cart cannot proceed to checkout
	s.BeginCheckout()
	assert.Equal(t, ViewCart, s.View())

	s.AddToCart(product("a", 10))
	s.BeginCheckout()
	assert.Equal(t, ViewCheckout, s.View())

	s.BackToCart()
	assert.Equal(t, ViewCart, s.View())
	s.BeginCheckout()

	_, err := s.PlaceOrder(model.PaymentMethodCard)
	require.NoError(t, err)
	assert.Equal(t, ViewSuccess, s.View())

	s.ContinueShopping()
	assert.Equal(t, ViewHome, s.View())
}

func TestChangeCallback_Triggers(t *testing.T) {
	s := loggedIn()
	var fired int
	s.SetChangeCallback(func() { fired++ })

	s.AddToCart(product("a", 10)) // cart change
	assert.Equal(t, 1, fired)

	s.UpdateQuantity("a", 1) // cart change
	assert.Equal(t, 2, fired)

	s.UpdateQuantity("a", 0) // no effective change
	assert.Equal(t, 2, fired)

	s.ViewProduct(product("b", 10)) // history length change
	assert.Equal(t, 3, fired)

	s.ViewProduct(product("b", 10)) // same product, length unchanged
	assert.Equal(t, 3, fired)

	s.ToggleLanguage() // language change
	assert.Equal(t, 4, fired)

	s.RemoveFromCart("no-such-id") // no-op removal
	assert.Equal(t, 4, fired)

	s.RemoveFromCart("a")
	assert.Equal(t, 5, fired)

	s.ClearCart() // already empty, no notification
	assert.Equal(t, 5, fired)
}
