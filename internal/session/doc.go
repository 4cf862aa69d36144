package session

// Package session owns all mutable state for a single storefront session:
// the cart, the recently-viewed history, the order history, the selected
// language, and the view state machine. Nothing here survives process exit.
