package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/kannangrocery/storefront/internal/model"
)

// ProductCard is a grid tile for one catalog product. Tapping the card opens
// the detail view; the button adds one unit to the cart.
type ProductCard struct {
	widget.BaseWidget

	product      model.Product
	localization *Localization
	language     model.Language

	onOpen func(model.Product)
	onAdd  func(model.Product)
}

// NewProductCard creates a card for the given product
func NewProductCard(p model.Product, localization *Localization, lang model.Language) *ProductCard {
	card := &ProductCard{
		product:      p,
		localization: localization,
		language:     lang,
	}
	card.ExtendBaseWidget(card)
	return card
}

// SetCallbacks sets the open and add-to-cart handlers
func (c *ProductCard) SetCallbacks(onOpen, onAdd func(model.Product)) {
	c.onOpen = onOpen
	c.onAdd = onAdd
}

// Tapped opens the detail view
func (c *ProductCard) Tapped(*fyne.PointEvent) {
	if c.onOpen != nil {
		c.onOpen(c.product)
	}
}

// CreateRenderer builds the card layout
func (c *ProductCard) CreateRenderer() fyne.WidgetRenderer {
	emoji := widget.NewLabelWithStyle(categoryEmoji(c.product.Category.Default), fyne.TextAlignCenter, fyne.TextStyle{})

	name := widget.NewLabelWithStyle(c.product.DisplayName(c.language), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	name.Truncation = fyne.TextTruncateEllipsis

	meta := widget.NewLabel(fmt.Sprintf("%s%s%s %.1f",
		c.product.DisplayCategory(c.language), MiddleDotSeparator, IconStar, c.product.Rating))
	meta.Truncation = fyne.TextTruncateEllipsis

	price := widget.NewLabelWithStyle(fmt.Sprintf(CurrencyFormat, c.product.Price), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	addBtn := widget.NewButton(c.localization.GetText(KeyAddToCart), func() {
		if c.onAdd != nil {
			c.onAdd(c.product)
		}
	})
	addBtn.Importance = widget.HighImportance

	content := container.NewVBox(
		emoji,
		name,
		meta,
		container.NewBorder(nil, nil, price, addBtn),
	)
	return widget.NewSimpleRenderer(container.NewPadded(content))
}

// MinSize keeps grid tiles uniform
func (c *ProductCard) MinSize() fyne.Size {
	min := c.BaseWidget.MinSize()
	if min.Width < ProductCardWidth {
		min.Width = ProductCardWidth
	}
	if min.Height < ProductCardHeight {
		min.Height = ProductCardHeight
	}
	return min
}

// categoryEmoji maps a default category name to a display emoji. Product
// image assets are not bundled; the grid shows a category glyph instead.
func categoryEmoji(category string) string {
	switch category {
	case "Rice & Grains":
		return "🍚"
	case "Pulses & Dals":
		return "🫘"
	case "Oils & Ghee":
		return "🫙"
	case "Spices & Masala":
		return "🌶️"
	case "Sweeteners":
		return "🍯"
	case "Beverages":
		return "☕"
	case "Snacks":
		return "🥨"
	case "Fresh Produce":
		return "🥥"
	default:
		return "🛍️"
	}
}
