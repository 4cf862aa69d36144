package catalog

// Package catalog holds the static product catalog. Products are embedded as
// YAML, decoded once at startup, and never mutated afterwards.
