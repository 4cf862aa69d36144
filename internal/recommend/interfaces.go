package recommend

import (
	"context"

	"github.com/kannangrocery/storefront/internal/model"
)

// Recommender defines the interface for the suggestion source.
type Recommender interface {
	// Recommend returns up to MaxSuggestions catalog products with a
	// one-sentence reason each, in the requested language.
	Recommend(ctx context.Context, cart []model.CartItem, viewed []model.Product, lang model.Language) ([]model.Recommendation, error)
}
