package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/kannangrocery/storefront/internal/catalog"
	"github.com/kannangrocery/storefront/internal/config"
	"github.com/kannangrocery/storefront/internal/model"
	"github.com/kannangrocery/storefront/internal/recommend"
	"github.com/kannangrocery/storefront/internal/session"
)

// RootUI represents the main UI structure. It renders the view the session is
// in and routes every user action through the session, so all state lives in
// one place.
type RootUI struct {
	window  fyne.Window
	app     fyne.App
	catalog *catalog.Catalog
	session *session.Session

	settings     *config.Settings
	localization *Localization
	refresher    *recommend.Refresher

	// Home-view category filter; empty means all categories
	activeCategory string

	suggestions []model.Recommendation
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, cat *catalog.Catalog, sess *session.Session) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		catalog:      cat,
		session:      sess,
		settings:     settings,
		localization: localization,
	}

	sess.SetLanguage(settings.GetLanguage())

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))
	window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	ui.buildRefresher()

	// Every cart, view-history, or language change restarts the suggestion
	// debounce with a fresh snapshot.
	sess.SetChangeCallback(ui.onSessionChange)

	log.Printf("RootUI initialized with %d catalog products", cat.Len())

	ui.render()
	return ui
}

// buildRefresher wires the suggestion pipeline from the current settings.
// Called again after the settings dialog saves so endpoint changes apply
// without a restart.
func (ui *RootUI) buildRefresher() {
	if ui.refresher != nil {
		ui.refresher.Stop()
	}

	client := recommend.NewClient(recommend.ClientConfig{
		BaseURL: ui.settings.GetRecommendBaseURL(),
		APIKey:  ui.settings.GetRecommendAPIKey(),
		Model:   ui.settings.GetRecommendModel(),
		Timeout: ui.settings.GetRequestTimeout(),
	}, ui.catalog)

	ui.refresher = recommend.NewRefresher(client, recommend.DefaultDebounce, ui.settings.GetRequestTimeout())
	ui.refresher.SetResultCallback(ui.onSuggestions)
}

// onSessionChange is the recommendation trigger: it snapshots the session and
// restarts the debounce.
func (ui *RootUI) onSessionChange() {
	ui.refresher.Refresh(ui.session.CartItems(), ui.session.ViewHistory(), ui.session.Language())
}

// onSuggestions receives refreshed suggestions from a background goroutine
func (ui *RootUI) onSuggestions(recommendations []model.Recommendation) {
	fyne.Do(func() {
		ui.suggestions = recommendations
		view := ui.session.View()
		if view == session.ViewHome || view == session.ViewProductDetail {
			ui.render()
		}
	})
}

// render rebuilds the window content for the session's current view
func (ui *RootUI) render() {
	var content fyne.CanvasObject

	switch view := ui.session.View(); view {
	case session.ViewLogin:
		content = ui.renderLogin()
	case session.ViewHome:
		content = ui.withNavbar(ui.renderHome())
	case session.ViewProductDetail:
		content = ui.withNavbar(ui.renderProductDetail())
	case session.ViewCart:
		content = ui.withNavbar(ui.renderCart())
	case session.ViewCheckout:
		content = ui.withNavbar(ui.renderCheckout())
	case session.ViewSuccess:
		content = ui.withNavbar(ui.renderSuccess())
	default:
		log.Printf("Unknown view state: %s", view)
		content = ui.withNavbar(ui.renderHome())
	}

	ui.window.SetContent(content)
}

// withNavbar places the store navbar above a view
func (ui *RootUI) withNavbar(view fyne.CanvasObject) fyne.CanvasObject {
	return container.NewBorder(ui.buildNavbar(), nil, nil, nil, view)
}

// buildNavbar creates the top bar: store title, language toggle, profile,
// settings, and the cart badge.
func (ui *RootUI) buildNavbar() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(
		IconStore+" "+ui.localization.GetText(KeyAppTitle),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)

	langBtn := widget.NewButton(IconLanguage+" "+ui.languageButtonLabel(), ui.onToggleLanguage)
	langBtn.Importance = widget.LowImportance

	profileBtn := widget.NewButton(IconProfile, ui.onShowProfile)
	profileBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	cartBtn := widget.NewButton(fmt.Sprintf(CartBadgeFormat, ui.session.CartCount()), func() {
		ui.session.OpenCart()
		ui.render()
	})
	cartBtn.Importance = widget.HighImportance

	actions := container.NewHBox(langBtn, profileBtn, settingsBtn, cartBtn)
	return container.NewBorder(nil, widget.NewSeparator(), title, actions)
}

// languageButtonLabel shows the language the toggle switches to
func (ui *RootUI) languageButtonLabel() string {
	if ui.session.Language() == model.LanguageEnglish {
		return "தமிழ்"
	}
	return "English"
}

// onToggleLanguage switches between English and Tamil everywhere
func (ui *RootUI) onToggleLanguage() {
	lang := ui.session.ToggleLanguage()
	ui.settings.SetLanguage(lang)
	ui.localization.SetLanguage(lang)
	ui.render()
}

// renderLogin builds the welcome gate. There is no authentication; any name
// (or none) passes through.
func (ui *RootUI) renderLogin() fyne.CanvasObject {
	title := widget.NewLabelWithStyle(
		IconStore+" "+ui.localization.GetText(KeyAppTitle),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)
	tagline := widget.NewLabelWithStyle(ui.localization.GetText(KeyTagline), fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	welcome := widget.NewLabelWithStyle(ui.localization.GetText(KeyLoginWelcome), fyne.TextAlignCenter, fyne.TextStyle{})

	nameEntry := widget.NewEntry()
	nameEntry.SetPlaceHolder(ui.localization.GetText(KeyLoginNameHint))

	enter := func() {
		ui.session.Login()
		ui.render()
	}
	nameEntry.OnSubmitted = func(string) { enter() }

	shopBtn := widget.NewButton(ui.localization.GetText(KeyShopNow), enter)
	shopBtn.Importance = widget.HighImportance

	// The toggle is available before login too
	langBtn := widget.NewButton(IconLanguage+" "+ui.languageButtonLabel(), ui.onToggleLanguage)
	langBtn.Importance = widget.LowImportance

	form := container.NewVBox(title, tagline, widget.NewSeparator(), welcome, nameEntry, shopBtn, langBtn)
	return container.NewCenter(container.NewGridWrap(fyne.NewSize(320, 250), form))
}

// renderHome builds the storefront: category chips, the product grid, and the
// suggestion panel when suggestions exist.
func (ui *RootUI) renderHome() fyne.CanvasObject {
	lang := ui.session.Language()

	chips := container.NewHBox()
	allChip := widget.NewButton(ui.localization.GetText(KeyAllCategories), func() {
		ui.activeCategory = ""
		ui.render()
	})
	if ui.activeCategory == "" {
		allChip.Importance = widget.HighImportance
	}
	chips.Add(allChip)

	for _, category := range ui.catalog.Categories() {
		key := category.Default
		chip := widget.NewButton(category.Resolve(lang), func() {
			ui.activeCategory = key
			ui.render()
		})
		if ui.activeCategory == key {
			chip.Importance = widget.HighImportance
		}
		chips.Add(chip)
	}

	products := ui.catalog.Products()
	if ui.activeCategory != "" {
		products = ui.catalog.ProductsByCategory(ui.activeCategory)
	}

	grid := container.NewGridWithColumns(ProductGridColumns)
	for _, p := range products {
		card := NewProductCard(p, ui.localization, lang)
		card.SetCallbacks(ui.onOpenProduct, ui.onAddToCart)
		grid.Add(card)
	}

	page := container.NewVBox(container.NewHScroll(chips), grid)
	if summary := ui.buildHomeCartSummary(); summary != nil {
		page.Add(summary)
	}
	if panel := ui.buildSuggestionPanel(); panel != nil {
		page.Add(panel)
	}

	return container.NewVScroll(page)
}

// renderProductDetail builds the detail view for the selected product
func (ui *RootUI) renderProductDetail() fyne.CanvasObject {
	product, ok := ui.session.SelectedProduct()
	if !ok {
		log.Printf("Detail view rendered without a selected product")
		ui.session.GoHome()
		return ui.renderHome()
	}

	lang := ui.session.Language()

	backBtn := widget.NewButton("← "+ui.localization.GetText(KeyBack), func() {
		ui.session.GoHome()
		ui.render()
	})
	backBtn.Importance = widget.LowImportance

	image := widget.NewLabelWithStyle(categoryEmoji(product.Category.Default), fyne.TextAlignCenter, fyne.TextStyle{})
	name := widget.NewLabelWithStyle(product.DisplayName(lang), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	category := widget.NewLabel(product.DisplayCategory(lang))
	rating := widget.NewLabel(fmt.Sprintf("%s %.1f", IconStar, product.Rating))
	price := widget.NewLabelWithStyle(fmt.Sprintf(CurrencyFormat, product.Price), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	description := widget.NewLabel(product.Description.Resolve(lang))
	description.Wrapping = fyne.TextWrapWord

	addBtn := widget.NewButton(ui.localization.GetText(KeyAddToCart), func() {
		ui.onAddToCart(product)
	})
	addBtn.Importance = widget.HighImportance

	details := container.NewVBox(
		backBtn,
		container.NewHBox(image, container.NewVBox(name, container.NewHBox(category, widget.NewLabel(MiddleDotSeparator), rating))),
		price,
		description,
		addBtn,
	)

	page := container.NewVBox(details)
	if panel := ui.buildSuggestionPanel(); panel != nil {
		page.Add(panel)
	}

	return container.NewVScroll(page)
}

// renderSuccess builds the order confirmation view
func (ui *RootUI) renderSuccess() fyne.CanvasObject {
	check := widget.NewLabelWithStyle(IconSuccess, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title := widget.NewLabelWithStyle(ui.localization.GetText(KeyOrderConfirmed), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	thanks := widget.NewLabelWithStyle(ui.localization.GetText(KeyOrderThanks), fyne.TextAlignCenter, fyne.TextStyle{})
	thanks.Wrapping = fyne.TextWrapWord

	box := container.NewVBox(check, title, thanks)

	if order, exists := ui.session.LastOrder(); exists {
		orderLine := widget.NewLabelWithStyle(
			fmt.Sprintf("%s: %s", ui.localization.GetText(KeyOrderNumber), order.ID),
			fyne.TextAlignCenter,
			fyne.TextStyle{Monospace: true},
		)
		totalLine := widget.NewLabelWithStyle(
			fmt.Sprintf("%s: "+CurrencyFormat, ui.localization.GetText(KeyTotalAmount), order.Total),
			fyne.TextAlignCenter,
			fyne.TextStyle{Bold: true},
		)
		box.Add(orderLine)
		box.Add(totalLine)
	}

	continueBtn := widget.NewButton(ui.localization.GetText(KeyContinueShopping), func() {
		ui.session.ContinueShopping()
		ui.render()
	})
	continueBtn.Importance = widget.HighImportance
	box.Add(continueBtn)

	return container.NewCenter(container.NewGridWrap(fyne.NewSize(360, 260), box))
}

// onOpenProduct opens the detail view for a product
func (ui *RootUI) onOpenProduct(p model.Product) {
	ui.session.ViewProduct(p)
	ui.render()
}

// onAddToCart adds one unit of a product to the cart
func (ui *RootUI) onAddToCart(p model.Product) {
	ui.session.AddToCart(p)
	ui.render()
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyAddedToCart)), ui.window.Canvas())
}

// onShowProfile shows the profile dialog with the order history
func (ui *RootUI) onShowProfile() {
	ShowProfileDialog(ui.window, ui.localization, ui.session)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Rebuild the suggestion pipeline and retranslate the UI
		lang := ui.settings.GetLanguage()
		ui.localization.SetLanguage(lang)
		ui.session.SetLanguage(lang)
		ui.buildRefresher()
		ui.render()
	})
}

// Stop releases background resources. Call on window close.
func (ui *RootUI) Stop() {
	if ui.refresher != nil {
		ui.refresher.Stop()
	}
}
