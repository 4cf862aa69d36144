package model

import (
	"testing"
)

func TestLocalizedText_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		text     LocalizedText
		lang     Language
		expected string
	}{
		{"english default", LocalizedText{Default: "Toor Dal", Tamil: "துவரம் பருப்பு"}, LanguageEnglish, "Toor Dal"},
		{"tamil variant", LocalizedText{Default: "Toor Dal", Tamil: "துவரம் பருப்பு"}, LanguageTamil, "துவரம் பருப்பு"},
		{"tamil missing falls back", LocalizedText{Default: "Toor Dal"}, LanguageTamil, "Toor Dal"},
		{"empty text", LocalizedText{}, LanguageEnglish, ""},
	}

	for _, test := range tests {
		result := test.text.Resolve(test.lang)
		if result != test.expected {
			t.Errorf("%s: Resolve(%s) = %q, expected %q", test.name, test.lang, result, test.expected)
		}
	}
}

func TestLanguage_Toggle(t *testing.T) {
	if LanguageEnglish.Toggle() != LanguageTamil {
		t.Error("Toggling English should yield Tamil")
	}
	if LanguageTamil.Toggle() != LanguageEnglish {
		t.Error("Toggling Tamil should yield English")
	}
}

func TestProduct_DisplayName(t *testing.T) {
	p := Product{
		ID:       "ghee-500",
		Name:     LocalizedText{Default: "Pure Cow Ghee", Tamil: "பசு நெய்"},
		Category: LocalizedText{Default: "Dairy"},
	}

	if got := p.DisplayName(LanguageTamil); got != "பசு நெய்" {
		t.Errorf("DisplayName(ta) = %q, expected Tamil variant", got)
	}
	if got := p.DisplayCategory(LanguageTamil); got != "Dairy" {
		t.Errorf("DisplayCategory(ta) = %q, expected fallback to default", got)
	}
}

func TestCartItem_LineTotal(t *testing.T) {
	tests := []struct {
		price    float64
		quantity int
		expected float64
	}{
		{100, 2, 200},
		{50, 3, 150},
		{20, 5, 100},
		{99.5, 1, 99.5},
	}

	for _, test := range tests {
		item := CartItem{Product: Product{Price: test.price}, Quantity: test.quantity}
		if got := item.LineTotal(); got != test.expected {
			t.Errorf("LineTotal() with price=%.2f qty=%d = %.2f, expected %.2f",
				test.price, test.quantity, got, test.expected)
		}
	}
}

func TestOrder_ItemCount(t *testing.T) {
	order := Order{
		Items: []CartItem{
			{Product: Product{ID: "a"}, Quantity: 2},
			{Product: Product{ID: "b"}, Quantity: 3},
		},
	}

	if got := order.ItemCount(); got != 5 {
		t.Errorf("ItemCount() = %d, expected 5", got)
	}

	empty := Order{}
	if got := empty.ItemCount(); got != 0 {
		t.Errorf("ItemCount() on empty order = %d, expected 0", got)
	}
}
