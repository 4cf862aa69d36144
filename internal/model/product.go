package model

// LocalizedText is a bilingual value: an English default and an optional
// Tamil variant. The Tamil variant may be empty, in which case the default
// is used for every language.
type LocalizedText struct {
	Default string `yaml:"en"`
	Tamil   string `yaml:"ta,omitempty"`
}

// Resolve returns the variant for the given language, falling back to the
// default when no Tamil text exists.
func (t LocalizedText) Resolve(lang Language) string {
	if lang == LanguageTamil && t.Tamil != "" {
		return t.Tamil
	}
	return t.Default
}

// Product is a catalog entry. Products are immutable: the catalog is loaded
// once at startup and never mutated.
type Product struct {
	ID          string        `yaml:"id"`
	Name        LocalizedText `yaml:"name"`
	Price       float64       `yaml:"price"`
	Category    LocalizedText `yaml:"category"`
	Description LocalizedText `yaml:"description"`
	Image       string        `yaml:"image"`
	Rating      float64       `yaml:"rating"`
	Tags        []string      `yaml:"tags"`
}

// DisplayName returns the product name in the given language
func (p Product) DisplayName(lang Language) string {
	return p.Name.Resolve(lang)
}

// DisplayCategory returns the category name in the given language
func (p Product) DisplayCategory(lang Language) string {
	return p.Category.Resolve(lang)
}
