package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// buildSuggestionPanel builds the "you may also like" panel. Returns nil when
// there are no suggestions so the panel disappears entirely.
func (ui *RootUI) buildSuggestionPanel() fyne.CanvasObject {
	if len(ui.suggestions) == 0 {
		return nil
	}

	lang := ui.session.Language()

	title := widget.NewLabelWithStyle(
		IconSparkle+" "+ui.localization.GetText(KeySuggestionsTitle),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)

	rows := container.NewVBox(title)
	for _, suggestion := range ui.suggestions {
		product := suggestion.Product

		name := widget.NewLabelWithStyle(product.DisplayName(lang), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		name.Truncation = fyne.TextTruncateEllipsis

		reason := widget.NewLabel(suggestion.Reason)
		reason.Wrapping = fyne.TextWrapWord

		price := widget.NewLabel(fmt.Sprintf(CurrencyFormat, product.Price))

		addBtn := widget.NewButton(ui.localization.GetText(KeyAddToCart), func() {
			ui.onAddToCart(product)
		})

		emoji := widget.NewLabel(categoryEmoji(product.Category.Default))
		row := container.NewBorder(nil, nil,
			emoji,
			container.NewHBox(price, addBtn),
			container.NewVBox(name, reason),
		)
		rows.Add(row)
	}

	return container.NewVBox(widget.NewSeparator(), rows)
}
