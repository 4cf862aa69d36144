package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/kannangrocery/storefront/internal/session"
)

// ShowProfileDialog shows the order history, most recent first
func ShowProfileDialog(window fyne.Window, localization *Localization, sess *session.Session) {
	orders := sess.Orders()

	var content fyne.CanvasObject
	if len(orders) == 0 {
		content = widget.NewLabelWithStyle(localization.GetText(KeyNoOrders), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	} else {
		rows := container.NewVBox()
		for _, order := range orders {
			id := widget.NewLabelWithStyle(order.ID, fyne.TextAlignLeading, fyne.TextStyle{Bold: true, Monospace: true})
			placed := widget.NewLabel(order.CreatedAt.Format("02 Jan 2006 15:04"))
			detail := widget.NewLabel(fmt.Sprintf("%d %s%s"+CurrencyFormat+"%s%s",
				order.ItemCount(), localization.GetText(KeyItems),
				MiddleDotSeparator, order.Total,
				MiddleDotSeparator, order.Status))

			rows.Add(container.NewVBox(
				container.NewBorder(nil, nil, id, placed),
				detail,
				widget.NewSeparator(),
			))
		}
		content = container.NewVScroll(rows)
	}

	profile := dialog.NewCustom(
		localization.GetText(KeyMyOrders),
		localization.GetText(KeyClose),
		content,
		window,
	)
	profile.Resize(fyne.NewSize(420, 360))
	profile.Show()
}
