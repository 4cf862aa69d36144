package model

// Recommendation pairs a catalog product with the assistant's one-sentence
// reason for suggesting it. Recommendations are transient: they live only for
// the current panel refresh and are never persisted.
type Recommendation struct {
	Product Product
	Reason  string
}
