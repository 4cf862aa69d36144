package ui

import (
	"log"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/kannangrocery/storefront/internal/model"
)

// renderCheckout builds the checkout view: delivery form, payment method
// selection, and the order summary. Placing the order runs a simulated
// payment delay before the session commits it.
func (ui *RootUI) renderCheckout() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyCheckout), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(ui.localization.GetText(KeyFullName))
	addressEntry := widget.NewEntry()
	addressEntry.SetPlaceHolder(ui.localization.GetText(KeyAddress))
	cityEntry := widget.NewEntry()
	cityEntry.SetPlaceHolder(ui.localization.GetText(KeyCity))
	pincodeEntry := widget.NewEntry()
	pincodeEntry.SetPlaceHolder(ui.localization.GetText(KeyPincode))
	phoneEntry := widget.NewEntry()
	phoneEntry.SetPlaceHolder(ui.localization.GetText(KeyPhone))

	form := container.NewVBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyDeliveryDetails), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nameEntry,
		addressEntry,
		container.NewGridWithColumns(2, cityEntry, pincodeEntry),
		phoneEntry,
	)

	paymentLabels := []string{
		ui.localization.GetText(KeyPayCard),
		ui.localization.GetText(KeyPayUPI),
		ui.localization.GetText(KeyPayCOD),
	}
	paymentMethods := map[string]model.PaymentMethod{
		paymentLabels[0]: model.PaymentMethodCard,
		paymentLabels[1]: model.PaymentMethodUPI,
		paymentLabels[2]: model.PaymentMethodCOD,
	}
	paymentRadio := widget.NewRadioGroup(paymentLabels, nil)
	paymentRadio.SetSelected(paymentLabels[0])

	payment := container.NewVBox(
		widget.NewLabelWithStyle(ui.localization.GetText(KeyPaymentMethod), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		paymentRadio,
	)

	processing := widget.NewProgressBarInfinite()
	processing.Hide()
	processingLabel := widget.NewLabel(ui.localization.GetText(KeyProcessingPayment))
	processingLabel.Hide()

	backBtn := widget.NewButton(ui.localization.GetText(KeyBackToCart), func() {
		ui.session.BackToCart()
		ui.render()
	})

	var placeBtn *widget.Button
	placeBtn = widget.NewButton(ui.localization.GetText(KeyPlaceOrder), func() {
		for _, entry := range []*widget.Entry{nameEntry, addressEntry, cityEntry, pincodeEntry, phoneEntry} {
			if strings.TrimSpace(entry.Text) == "" {
				dialog.ShowInformation(ui.localization.GetText(KeyCheckout),
					ui.localization.GetText(KeyFillAllFields), ui.window)
				return
			}
		}

		method := paymentMethods[paymentRadio.Selected]
		placeBtn.Disable()
		backBtn.Disable()
		processing.Show()
		processingLabel.Show()

		delay := ui.settings.GetProcessingDelay()
		log.Printf("Simulating payment processing for %v (method=%s)", delay, method)

		go func() {
			time.Sleep(delay)
			fyne.Do(func() {
				if _, err := ui.session.PlaceOrder(method); err != nil {
					log.Printf("Failed to place order: %v", err)
					dialog.ShowError(err, ui.window)
				}
				ui.render()
			})
		}()
	})
	placeBtn.Importance = widget.HighImportance

	page := container.NewVBox(
		title,
		form,
		widget.NewSeparator(),
		payment,
		ui.buildSummary(ui.session.CartTotals()),
		processingLabel,
		processing,
		container.NewGridWithColumns(2, backBtn, placeBtn),
	)

	return container.NewVScroll(page)
}
