package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconStore    = "🏪"
	IconCart     = "🛒"
	IconProfile  = "👤"
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconStar     = "★"
	IconSparkle  = "✨"
	IconSuccess  = "✓"
	IconPlus     = "+"
	IconMinus    = "−"
)

// Text fragments
const (
	CurrencySymbol     = "₹"
	CurrencyFormat     = "₹%.2f"
	MiddleDotSeparator = " · "
	CartBadgeFormat    = "🛒 %d"
)

// Layout sizing
const (
	WindowMinWidth  float32 = 720
	WindowMinHeight float32 = 560

	ProductGridColumns int     = 3
	ProductCardWidth   float32 = 200
	ProductCardHeight  float32 = 150

	SummaryLabelWidth float32 = 140
)
