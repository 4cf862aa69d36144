package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/kannangrocery/storefront/internal/config"
	"github.com/kannangrocery/storefront/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	endpointEntry  *widget.Entry
	apiKeyEntry    *widget.Entry
	modelEntry     *widget.Entry

	languageByLabel map[string]model.Language
}

// ShowSettingsDialog creates and shows the settings dialog. The onSaved
// callback runs after the settings were persisted.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	sd.languageByLabel = make(map[string]model.Language)
	var languageLabels []string
	for lang, label := range sd.settings.GetLanguageOptions() {
		sd.languageByLabel[label] = lang
		languageLabels = append(languageLabels, label)
	}
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	// Suggestion service configuration
	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultRecommendBaseURL)

	sd.apiKeyEntry = widget.NewPasswordEntry()
	sd.apiKeyEntry.SetPlaceHolder("API key")

	sd.modelEntry = widget.NewEntry()
	sd.modelEntry.SetPlaceHolder(config.DefaultRecommendModel)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyAPIEndpoint)),
		sd.endpointEntry,

		widget.NewLabel(sd.localization.GetText(KeyAPIKey)),
		sd.apiKeyEntry,

		widget.NewLabel(sd.localization.GetText(KeyModelName)),
		sd.modelEntry,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 380))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for label, lang := range sd.languageByLabel {
		if lang == current {
			sd.languageSelect.SetSelected(label)
			break
		}
	}

	sd.endpointEntry.SetText(sd.settings.GetRecommendBaseURL())
	sd.apiKeyEntry.SetText(sd.settings.GetRecommendAPIKey())
	sd.modelEntry.SetText(sd.settings.GetRecommendModel())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Save language
	if lang, exists := sd.languageByLabel[sd.languageSelect.Selected]; exists {
		sd.settings.SetLanguage(lang)
	}

	// Save suggestion service configuration
	sd.settings.SetRecommendBaseURL(sd.endpointEntry.Text)
	sd.settings.SetRecommendAPIKey(sd.apiKeyEntry.Text)
	sd.settings.SetRecommendModel(sd.modelEntry.Text)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved), sd.window)
}
