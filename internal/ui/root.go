package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lol-cooldowns/internal/config"
	"github.com/ytget/lol-cooldowns/internal/cooldown"
	"github.com/ytget/lol-cooldowns/internal/ddragon"
	"github.com/ytget/lol-cooldowns/internal/model"
	"github.com/ytget/lol-cooldowns/internal/roster"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	nameEntry    *widget.Entry
	addBtn       *widget.Button
	rowsBox      *fyne.Container
	rows         map[string]*ChampionRow // by canonical name, UI goroutine only
	tracker      roster.Tracker
	timer        cooldown.Runner
	icons        ddragon.IconSource
	cfg          config.Config
	settings     *config.Settings
	localization *Localization

	// adds still waiting for the roster
	pendingAdds atomic.Int32

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(
	window fyne.Window,
	app fyne.App,
	tracker roster.Tracker,
	timer cooldown.Runner,
	icons ddragon.IconSource,
	cfg config.Config,
) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		rows:         make(map[string]*ChampionRow),
		tracker:      tracker,
		timer:        timer,
		icons:        icons,
		cfg:          cfg,
		settings:     settings,
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callbacks for roster and countdown updates
	ui.tracker.SetUpdateCallback(ui.onChampionUpdate)
	ui.timer.SetUpdateCallback(ui.onCountdownUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.nameEntry = widget.NewEntry()
	ui.nameEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterChampion))
	// Add the champion when user presses Enter in the name field
	ui.nameEntry.OnSubmitted = func(string) {
		ui.onAddClick()
	}

	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAddChampion), ui.onAddClick)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	left := container.NewHBox(settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(TileIconSize, TileIconSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, ui.addBtn, ui.nameEntry)

	// Notification panel under the name entry (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationSpinner, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	ui.rowsBox = container.NewVBox()
	for _, champion := range ui.tracker.List() {
		ui.addRow(champion)
	}

	content := container.NewBorder(topCombined, nil, nil, nil, container.NewVScroll(ui.rowsBox))

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range sortedLanguageCodes(ui.localization.GetAvailableLanguages()) {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.nameEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterChampion))
	ui.addBtn.SetText(ui.localization.GetText(KeyAddChampion))

	for _, row := range ui.rows {
		row.RefreshTexts()
	}
}

// onAddClick handles the add button click. The entry is cleared after
// every attempt; the lookup runs off the UI goroutine.
func (ui *RootUI) onAddClick() {
	name := strings.TrimSpace(ui.nameEntry.Text)
	ui.nameEntry.SetText("")

	if name == "" {
		ui.showToast(ui.localization.GetText(KeyPleaseEnterName))
		return
	}

	ui.pendingAdds.Add(1)
	ui.showNotification(ui.localization.GetText(KeyLoadingChampion), true)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), AddChampionTimeout)
		defer cancel()

		champion, err := ui.tracker.Add(ctx, name)
		idle := ui.pendingAdds.Add(-1) == 0
		if err != nil {
			ui.handleAddError(name, err, idle)
			return
		}

		log.Printf("Champion added successfully: %s (%d abilities)", champion.Name, len(champion.Abilities))
		ui.finishLoading(idle)
		ui.loadIcons(champion.Name)
	}()
}

// handleAddError reports a failed add: validation failures as a transient
// popup, data failures in the notification panel. The loading panel is
// only hidden when idle, i.e. no other add is still running.
func (ui *RootUI) handleAddError(name string, err error, idle bool) {
	log.Printf("Failed to add champion %q: %v", name, err)

	var unknown *roster.UnknownChampionError
	switch {
	case errors.Is(err, roster.ErrDuplicateChampion):
		ui.finishLoading(idle)
		ui.showToast(ui.localization.GetText(KeyAlreadyTracked))
	case errors.As(err, &unknown):
		ui.finishLoading(idle)
		ui.showToast(ui.unknownChampionMessage(unknown))
	case errors.Is(err, roster.ErrUnknownChampion):
		ui.finishLoading(idle)
		ui.showToast(ui.localization.GetText(KeyUnknownChampion))
	default:
		ui.showNotification(ui.localization.GetText(KeyDataUnavailable)+": "+err.Error(), false)
	}
}

func (ui *RootUI) finishLoading(idle bool) {
	if idle {
		ui.hideNotification()
	}
}

func (ui *RootUI) unknownChampionMessage(err *roster.UnknownChampionError) string {
	message := ui.localization.GetText(KeyUnknownChampion)
	if err.Suggestion == "" {
		return message
	}
	return fmt.Sprintf(SuggestionFormat, message, ui.localization.GetText(KeyDidYouMean), err.Suggestion)
}

// loadIcons fetches ability icons in the background and applies them to
// the champion's row. Missing icons keep the placeholder.
func (ui *RootUI) loadIcons(name string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), IconFetchTimeout)
		defer cancel()

		icons, failures := ui.icons.AbilityIcons(ctx, name, ddragon.DefaultIconSize)
		for id, err := range failures {
			log.Printf("Icon unavailable: champion=%s ability=%s: %v", name, id, err)
		}
		if len(failures) > 0 {
			ui.showNotification(ui.localization.GetText(KeyIconsUnavailable), false)
		}

		fyne.Do(func() {
			row, ok := ui.rows[name]
			if !ok {
				log.Printf("Icons loaded for %s but no row is shown", name)
				return
			}
			row.SetIcons(icons)
		})
	}()
}

// onChampionUpdate handles roster updates. Called from any goroutine.
func (ui *RootUI) onChampionUpdate(champion model.TrackedChampion) {
	fyne.Do(func() {
		if row, ok := ui.rows[champion.Name]; ok {
			row.UpdateChampion(champion)
			return
		}
		ui.addRow(champion)
	})
}

// addRow appends a row for a newly tracked champion
func (ui *RootUI) addRow(champion model.TrackedChampion) {
	row := NewChampionRow(champion, ui.localization)
	row.SetCallbacks(ui.onStartCountdown, ui.onAdjustLevel, ui.onHasteChange)
	ui.rows[champion.Name] = row
	ui.rowsBox.Add(row)
	log.Printf("Row created for %s", champion.Name)
}

// onCountdownUpdate handles timer updates. Called from timer goroutines.
func (ui *RootUI) onCountdownUpdate(update cooldown.Update) {
	fyne.Do(func() {
		row, ok := ui.rows[update.Key.Champion]
		if !ok {
			return
		}
		row.ApplyUpdate(update)
	})
}

// onStartCountdown handles a tap on an ability icon
func (ui *RootUI) onStartCountdown(name, abilityID string) {
	session, err := ui.timer.Start(name, abilityID)
	if err != nil {
		log.Printf("Error starting countdown %s/%s: %v", name, abilityID, err)
		ui.showToast(ui.localization.GetText(KeyCountdownFailed) + ": " + err.Error())
		return
	}

	row, ok := ui.rows[name]
	if !ok {
		return
	}
	if tile, ok := row.Tile(abilityID); ok {
		tile.ShowCountdown(session)
	}
}

// onAdjustLevel handles the -/+ rank buttons
func (ui *RootUI) onAdjustLevel(name, abilityID string, delta int) {
	state, err := ui.tracker.AdjustLevel(name, abilityID, delta)
	if err != nil {
		if errors.Is(err, roster.ErrFixedCooldown) {
			return
		}
		log.Printf("Error adjusting level %s/%s: %v", name, abilityID, err)
		ui.showToast(ui.localization.GetText(KeyLevelChangeFailed) + ": " + err.Error())
		return
	}

	if row, ok := ui.rows[name]; ok {
		if tile, ok := row.Tile(abilityID); ok {
			tile.SetAbility(state)
		}
	}
}

// onHasteChange stores the champion's ability haste and returns the
// value actually kept
func (ui *RootUI) onHasteChange(name, text string) int {
	haste, err := ui.tracker.SetAbilityHaste(name, text)
	if err != nil {
		log.Printf("Error setting ability haste for %s: %v", name, err)
		return 0
	}
	return haste
}

// showNotification displays a message in the notification panel under the name entry.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// showToast shows a popup that hides itself after the configured delay
func (ui *RootUI) showToast(message string) {
	delay := ui.cfg.ToastDuration
	fyne.Do(func() {
		popup := widget.NewPopUp(widget.NewLabel(message), ui.window.Canvas())
		popup.ShowAtPosition(fyne.NewPos(ToastMargin, ToastMargin))
		time.AfterFunc(delay, func() {
			fyne.Do(popup.Hide)
		})
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	dialog := NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.cfg, config.DefaultConfigPath())
	dialog.SetOnSaved(func(lang string) {
		ui.onLanguageChange(lang)
		ui.showToast(ui.localization.GetText(KeySettingsSaved))
	})
	dialog.Show()
}

// ChampionRow returns the row shown for a champion
func (ui *RootUI) ChampionRow(name string) (*ChampionRow, bool) {
	row, ok := ui.rows[name]
	return row, ok
}
