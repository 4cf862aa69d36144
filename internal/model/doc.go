package model

// Package model defines domain data structures used across the app: catalog
// products with bilingual text, cart items, order snapshots, and
// recommendation entries. Structures are designed for direct rendering in the
// UI and carry no behavior beyond small display helpers.
