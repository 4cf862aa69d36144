package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/kannangrocery/storefront/internal/model"
	"github.com/kannangrocery/storefront/internal/pricing"
)

// renderCart builds the cart view: one row per entry with quantity controls,
// the discount nudge, and the order summary.
func (ui *RootUI) renderCart() fyne.CanvasObject {
	items := ui.session.CartItems()

	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyYourCart), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	if len(items) == 0 {
		empty := widget.NewLabelWithStyle(ui.localization.GetText(KeyCartEmpty), fyne.TextAlignCenter, fyne.TextStyle{})
		browseBtn := widget.NewButton(ui.localization.GetText(KeyBrowseProducts), func() {
			ui.session.GoHome()
			ui.render()
		})
		browseBtn.Importance = widget.HighImportance
		return container.NewCenter(container.NewVBox(empty, browseBtn))
	}

	rows := container.NewVBox()
	for _, item := range items {
		rows.Add(ui.buildCartRow(item))
		rows.Add(widget.NewSeparator())
	}

	totals := ui.session.CartTotals()

	page := container.NewVBox(title, rows)
	if nudge := ui.buildDiscountNudge(totals); nudge != nil {
		page.Add(nudge)
	}
	page.Add(ui.buildSummary(totals))

	checkoutBtn := widget.NewButton(ui.localization.GetText(KeyProceedToCheckout), func() {
		ui.session.BeginCheckout()
		ui.render()
	})
	checkoutBtn.Importance = widget.HighImportance
	page.Add(checkoutBtn)

	return container.NewVScroll(page)
}

// buildCartRow builds one cart entry with quantity and remove controls
func (ui *RootUI) buildCartRow(item model.CartItem) fyne.CanvasObject {
	lang := ui.session.Language()
	id := item.Product.ID

	name := widget.NewLabelWithStyle(item.Product.DisplayName(lang), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	name.Truncation = fyne.TextTruncateEllipsis
	unitPrice := widget.NewLabel(fmt.Sprintf(CurrencyFormat, item.Product.Price))

	minusBtn := widget.NewButton(IconMinus, func() {
		ui.session.UpdateQuantity(id, -1)
		ui.render()
	})
	quantity := widget.NewLabelWithStyle(fmt.Sprintf("%d", item.Quantity), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	plusBtn := widget.NewButton(IconPlus, func() {
		ui.session.UpdateQuantity(id, 1)
		ui.render()
	})

	lineTotal := widget.NewLabelWithStyle(fmt.Sprintf(CurrencyFormat, item.LineTotal()), fyne.TextAlignTrailing, fyne.TextStyle{Bold: true})

	removeBtn := widget.NewButton(ui.localization.GetText(KeyRemove), func() {
		ui.session.RemoveFromCart(id)
		ui.render()
	})
	removeBtn.Importance = widget.DangerImportance

	emoji := widget.NewLabel(categoryEmoji(item.Product.Category.Default))
	left := container.NewHBox(emoji, container.NewVBox(name, unitPrice))
	right := container.NewHBox(minusBtn, quantity, plusBtn, lineTotal, removeBtn)

	return container.NewBorder(nil, nil, left, right)
}

// buildDiscountNudge shows how many more items unlock the next bulk tier.
// Returns nil once the top tier is reached.
func (ui *RootUI) buildDiscountNudge(totals pricing.Totals) fyne.CanvasObject {
	quantity := totals.TotalQuantity

	var text string
	switch {
	case quantity == 0 || quantity >= pricing.BulkTierLarge:
		return nil
	case quantity < pricing.BulkTierSmall:
		text = fmt.Sprintf(ui.localization.GetText(KeyDiscountNudgeSmall), pricing.BulkTierSmall-quantity)
	default:
		text = fmt.Sprintf(ui.localization.GetText(KeyDiscountNudgeLarge), pricing.BulkTierLarge-quantity)
	}

	nudge := widget.NewLabelWithStyle(IconSparkle+" "+text, fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	nudge.Wrapping = fyne.TextWrapWord
	return nudge
}

// buildSummary builds the order summary box from pricing engine output
func (ui *RootUI) buildSummary(totals pricing.Totals) fyne.CanvasObject {
	summary := container.NewVBox(widget.NewSeparator())

	summary.Add(ui.summaryRow(ui.localization.GetText(KeySubtotal),
		fmt.Sprintf(CurrencyFormat, totals.Subtotal), false))

	if totals.Discount > 0 {
		label := fmt.Sprintf("%s (%.0f%%)", ui.localization.GetText(KeyBulkDiscount), totals.DiscountRate*100)
		summary.Add(ui.summaryRow(label, fmt.Sprintf("-"+CurrencyFormat, totals.Discount), false))
	}

	summary.Add(ui.summaryRow(ui.localization.GetText(KeyShipping),
		fmt.Sprintf(CurrencyFormat, totals.Shipping), false))
	summary.Add(widget.NewSeparator())
	summary.Add(ui.summaryRow(ui.localization.GetText(KeyTotalAmount),
		fmt.Sprintf(CurrencyFormat, totals.Total), true))

	return summary
}

// summaryRow lays out one label/amount pair with a fixed label column
func (ui *RootUI) summaryRow(label, amount string, bold bool) fyne.CanvasObject {
	style := fyne.TextStyle{Bold: bold}
	name := widget.NewLabelWithStyle(label, fyne.TextAlignLeading, style)
	return container.NewBorder(nil, nil,
		container.NewGridWrap(fyne.NewSize(SummaryLabelWidth, name.MinSize().Height), name),
		widget.NewLabelWithStyle(amount, fyne.TextAlignTrailing, style),
	)
}

// buildHomeCartSummary shows the running totals on the home view so the
// pricing breakdown is visible without opening the cart. Returns nil while
// the cart is empty.
func (ui *RootUI) buildHomeCartSummary() fyne.CanvasObject {
	count := ui.session.CartCount()
	if count == 0 {
		return nil
	}

	totals := ui.session.CartTotals()

	title := widget.NewLabelWithStyle(
		IconCart+" "+ui.localization.GetText(KeyYourCart),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
	detail := widget.NewLabel(fmt.Sprintf("%d %s%s%s%.2f",
		count, ui.localization.GetText(KeyItems), MiddleDotSeparator, CurrencySymbol, totals.Total))

	header := container.NewBorder(nil, nil, title, detail)
	return container.NewVBox(widget.NewSeparator(), header, ui.buildSummary(totals))
}
