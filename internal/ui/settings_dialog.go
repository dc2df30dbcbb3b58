package ui

import (
	"fmt"
	"log"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lol-cooldowns/internal/config"
	"github.com/ytget/lol-cooldowns/internal/platform"
)

// Dialog size constants
const (
	SettingsDialogWidth  = 420
	SettingsDialogHeight = 300
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	cfg          config.Config
	configPath   string

	// UI components
	languageSelect *widget.Select
	languageCodes  []string

	onSaved func(lang string)
}

// NewSettingsDialog creates a new settings dialog. Data Dragon settings come
// from the config file and are shown read-only.
func NewSettingsDialog(
	settings *config.Settings,
	localization *Localization,
	window fyne.Window,
	cfg config.Config,
	configPath string,
) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		cfg:          cfg,
		configPath:   configPath,
	}

	sd.createUI()
	return sd
}

// SetOnSaved sets the callback invoked with the chosen language code
func (sd *SettingsDialog) SetOnSaved(onSaved func(lang string)) {
	sd.onSaved = onSaved
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	languageLabels := sd.settings.GetLanguageOptions()
	sd.languageCodes = slices.Sorted(maps.Keys(languageLabels))
	options := make([]string, 0, len(sd.languageCodes))
	for _, code := range sd.languageCodes {
		options = append(options, languageLabels[code])
	}
	sd.languageSelect = widget.NewSelect(options, nil)

	versionLabel := widget.NewLabel(sd.cfg.DataVersion + " · " + sd.cfg.Locale)
	sourceLabel := widget.NewLabel(sd.cfg.BaseURL)
	sourceLabel.Truncation = fyne.TextTruncateEllipsis

	pathLabel := widget.NewLabel(sd.configPath)
	pathLabel.Truncation = fyne.TextTruncateEllipsis
	revealBtn := widget.NewButton(l.GetText(KeyReveal), sd.onReveal)
	pathRow := container.NewBorder(nil, nil, nil, revealBtn, pathLabel)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyData)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyDataVersion)+":"),
		versionLabel,
		sourceLabel,

		widget.NewLabel(l.GetText(KeyConfigFile)+":"),
		pathRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	current := sd.settings.GetLanguage()
	for i, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelectedIndex(i)
			return
		}
	}
	sd.languageSelect.ClearSelected()
}

// selectedLanguage returns the code of the selected language, or ""
func (sd *SettingsDialog) selectedLanguage() string {
	i := sd.languageSelect.SelectedIndex()
	if i < 0 || i >= len(sd.languageCodes) {
		return ""
	}
	return sd.languageCodes[i]
}

// onReveal opens the config file location in the file manager
func (sd *SettingsDialog) onReveal() {
	if err := platform.RevealPath(sd.configPath); err != nil {
		log.Printf("Error revealing %s: %v", sd.configPath, err)
		dialog.ShowError(fmt.Errorf("%s: %w", sd.localization.GetText(KeyErrorRevealing), err), sd.window)
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	lang := sd.selectedLanguage()
	if lang == "" {
		return
	}

	sd.settings.SetLanguage(lang)
	log.Printf("Settings saved: language=%s", lang)

	if sd.onSaved != nil {
		sd.onSaved(lang)
	}
}
