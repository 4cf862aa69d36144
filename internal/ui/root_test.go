package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/kannangrocery/storefront/internal/catalog"
	"github.com/kannangrocery/storefront/internal/model"
	"github.com/kannangrocery/storefront/internal/pricing"
	"github.com/kannangrocery/storefront/internal/session"
)

func newTestUI(t *testing.T) *RootUI {
	t.Helper()

	app := test.NewApp()
	window := app.NewWindow("test")

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("Failed to load catalog: %v", err)
	}

	ui := NewRootUI(window, app, cat, session.New())
	t.Cleanup(ui.Stop)
	return ui
}

func TestRootUIStartsOnLogin(t *testing.T) {
	ui := newTestUI(t)

	if ui.session.View() != session.ViewLogin {
		t.Errorf("Expected initial view %s, got %s", session.ViewLogin, ui.session.View())
	}
}

func TestRootUIRendersEveryView(t *testing.T) {
	ui := newTestUI(t)
	products := ui.catalog.Products()

	ui.session.Login()
	ui.render()

	ui.onOpenProduct(products[0])
	if ui.session.View() != session.ViewProductDetail {
		t.Fatalf("Expected detail view, got %s", ui.session.View())
	}

	ui.onAddToCart(products[0])
	ui.session.OpenCart()
	ui.render()
	if ui.session.View() != session.ViewCart {
		t.Fatalf("Expected cart view, got %s", ui.session.View())
	}

	ui.session.BeginCheckout()
	ui.render()
	if ui.session.View() != session.ViewCheckout {
		t.Fatalf("Expected checkout view, got %s", ui.session.View())
	}
}

func TestRootUICategoryFilter(t *testing.T) {
	ui := newTestUI(t)
	ui.session.Login()

	categories := ui.catalog.Categories()
	ui.activeCategory = categories[0].Default
	ui.render()

	if len(ui.catalog.ProductsByCategory(ui.activeCategory)) == 0 {
		t.Errorf("Category %q should have products", ui.activeCategory)
	}
}

func TestRootUIEmptyCartShowsEmptyState(t *testing.T) {
	ui := newTestUI(t)
	ui.session.Login()
	ui.session.OpenCart()

	// Rendering the empty cart must not panic and must not offer checkout
	ui.render()

	ui.session.BeginCheckout()
	if ui.session.View() != session.ViewCart {
		t.Errorf("Empty cart must not reach checkout, got %s", ui.session.View())
	}
}

func TestRootUILanguageToggleBeforeLogin(t *testing.T) {
	ui := newTestUI(t)

	// The login view offers the toggle before any login happens
	ui.onToggleLanguage()

	if ui.session.View() != session.ViewLogin {
		t.Fatalf("Toggling language must not leave the login view, got %s", ui.session.View())
	}
	if ui.session.Language() != model.LanguageTamil {
		t.Errorf("Expected language ta after toggle, got %s", ui.session.Language())
	}
	if ui.localization.GetCurrentLanguage() != model.LanguageTamil {
		t.Errorf("Localization language %s out of sync with session", ui.localization.GetCurrentLanguage())
	}
}

func TestRootUIHomeCartSummary(t *testing.T) {
	ui := newTestUI(t)
	ui.session.Login()

	// No summary while the cart is empty
	if summary := ui.buildHomeCartSummary(); summary != nil {
		t.Error("Home summary should be hidden for an empty cart")
	}

	products := ui.catalog.Products()
	ui.session.AddToCart(products[0])
	ui.session.AddToCart(products[1])

	if summary := ui.buildHomeCartSummary(); summary == nil {
		t.Fatal("Home summary should appear once the cart has items")
	}

	// The home view and the cart share one pricing engine
	expected := pricing.Calculate(ui.session.CartItems())
	if got := ui.session.CartTotals(); got != expected {
		t.Errorf("Home summary totals %+v differ from engine output %+v", got, expected)
	}

	// Rendering home with a populated cart must not panic
	ui.render()
}

func TestRootUILanguageToggle(t *testing.T) {
	ui := newTestUI(t)
	ui.session.Login()

	ui.onToggleLanguage()

	if got := ui.localization.GetCurrentLanguage(); got != ui.session.Language() {
		t.Errorf("Localization language %s out of sync with session %s", got, ui.session.Language())
	}
	if ui.settings.GetLanguage() != ui.session.Language() {
		t.Error("Settings language out of sync with session")
	}
}
