package model

// Language selects which variant of bilingual catalog text is rendered.
type Language string

const (
	// LanguageEnglish is the default storefront language
	LanguageEnglish Language = "en"

	// LanguageTamil is the alternate storefront language
	LanguageTamil Language = "ta"
)

// String returns the language code
func (l Language) String() string {
	return string(l)
}

// Toggle returns the other supported language
func (l Language) Toggle() Language {
	if l == LanguageTamil {
		return LanguageEnglish
	}
	return LanguageTamil
}
