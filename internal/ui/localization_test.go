package ui

import (
	"testing"

	"github.com/kannangrocery/storefront/internal/model"
)

func TestLocalizationDefaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != model.LanguageEnglish {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText(KeyAddToCart); got != "Add to Cart" {
		t.Errorf("Expected English text, got %q", got)
	}
}

func TestLocalizationTamil(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage(model.LanguageTamil)

	if l.GetCurrentLanguage() != model.LanguageTamil {
		t.Errorf("Expected language ta, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText(KeyAddToCart); got != "கூடையில் சேர்" {
		t.Errorf("Expected Tamil text, got %q", got)
	}
}

func TestLocalizationUnknownLanguageIgnored(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage(model.Language("xx"))

	if l.GetCurrentLanguage() != model.LanguageEnglish {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationUnknownKeyFallsBackToKey(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("Unknown key should return the key itself, got %q", got)
	}
}

func TestLocalizationKeyParity(t *testing.T) {
	l := NewLocalization()

	english := l.texts[model.LanguageEnglish]
	tamil := l.texts[model.LanguageTamil]

	for key := range english {
		if _, exists := tamil[key]; !exists {
			t.Errorf("Key %q missing from Tamil table", key)
		}
	}
	for key := range tamil {
		if _, exists := english[key]; !exists {
			t.Errorf("Key %q missing from English table", key)
		}
	}
}
