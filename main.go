package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/kannangrocery/storefront/internal/catalog"
	"github.com/kannangrocery/storefront/internal/session"
	"github.com/kannangrocery/storefront/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.kannangrocery.storefront"
	AppName = "Kannan Stores"

	WindowWidth  = 800
	WindowHeight = 600
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply storefront theme
	myApp.Settings().SetTheme(ui.NewFestivalTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Load the embedded product catalog
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	// Create the single shopping session and the UI over it
	sess := session.New()
	rootUI := ui.NewRootUI(myWindow, myApp, cat, sess)
	myWindow.SetOnClosed(rootUI.Stop)

	// Show and run
	myWindow.ShowAndRun()
}
