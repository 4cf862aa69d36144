package pricing

// Package pricing implements the cart totals calculation: subtotal, bulk
// discount tiers, flat shipping, and grand total. Every place the UI shows a
// total goes through Calculate so all call sites agree.
