package ui

// Package ui contains the Fyne-based desktop storefront. It renders the
// session's current view, routes every user action through the session, and
// drives the debounced suggestion refresh. All UI strings are localized via
// Localization.
