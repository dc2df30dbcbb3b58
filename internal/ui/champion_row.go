package ui

import (
	"image"
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lol-cooldowns/internal/cooldown"
	"github.com/ytget/lol-cooldowns/internal/model"
)

// ChampionRow represents one tracked champion: name, ability tiles and the
// ability haste entry
type ChampionRow struct {
	widget.BaseWidget

	champion     model.TrackedChampion
	localization *Localization

	// UI components
	nameLabel  *widget.Label
	tiles      []*AbilityTile
	hasteEntry *hasteEntry
	hasteLabel *widget.Label

	// Callbacks
	onStart  func(name, abilityID string)
	onAdjust func(name, abilityID string, delta int)
	onHaste  func(name, text string) int
}

// NewChampionRow creates a new champion row widget
func NewChampionRow(champion model.TrackedChampion, localization *Localization) *ChampionRow {
	cr := &ChampionRow{
		champion:     champion.Clone(),
		localization: localization,
	}
	cr.ExtendBaseWidget(cr)
	cr.createUI()
	return cr
}

// SetCallbacks sets the action callbacks
func (cr *ChampionRow) SetCallbacks(
	onStart func(name, abilityID string),
	onAdjust func(name, abilityID string, delta int),
	onHaste func(name, text string) int,
) {
	if onStart == nil {
		log.Printf("Warning: onStart callback is nil for champion %s", cr.champion.Name)
	}
	if onAdjust == nil {
		log.Printf("Warning: onAdjust callback is nil for champion %s", cr.champion.Name)
	}
	if onHaste == nil {
		log.Printf("Warning: onHaste callback is nil for champion %s", cr.champion.Name)
	}

	cr.onStart = onStart
	cr.onAdjust = onAdjust
	cr.onHaste = onHaste
}

// Tile returns the tile of an ability
func (cr *ChampionRow) Tile(abilityID string) (*AbilityTile, bool) {
	for _, tile := range cr.tiles {
		if tile.AbilityID() == abilityID {
			return tile, true
		}
	}
	return nil, false
}

// UpdateChampion applies a roster update to the tiles and the haste entry
func (cr *ChampionRow) UpdateChampion(champion model.TrackedChampion) {
	cr.champion = champion.Clone()

	for _, ability := range cr.champion.Abilities {
		if tile, ok := cr.Tile(ability.ID); ok {
			tile.SetAbility(*ability)
		}
	}

	// Leave the entry alone while the user is typing
	if roster := strconv.Itoa(champion.AbilityHaste); !cr.hasteEntry.focused && cr.hasteEntry.Text != roster {
		cr.hasteEntry.SetText(roster)
	}
}

// SetIcons shows decoded ability icons; abilities missing from icons keep
// the placeholder
func (cr *ChampionRow) SetIcons(icons map[string]image.Image) {
	for _, tile := range cr.tiles {
		if img, ok := icons[tile.AbilityID()]; ok {
			tile.SetIcon(img)
		}
	}
}

// ApplyUpdate forwards a timer update to the matching tile
func (cr *ChampionRow) ApplyUpdate(update cooldown.Update) bool {
	tile, ok := cr.Tile(update.Key.Ability)
	if !ok {
		return false
	}
	return tile.ApplyUpdate(update)
}

// RefreshTexts updates localized texts
func (cr *ChampionRow) RefreshTexts() {
	cr.hasteEntry.SetPlaceHolder(cr.localization.GetText(KeyAbilityHaste))
}

// createUI creates all UI components for the row
func (cr *ChampionRow) createUI() {
	cr.nameLabel = widget.NewLabel(cr.champion.Name)
	cr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	cr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	for _, ability := range cr.champion.Abilities {
		tile := NewAbilityTile(*ability)
		tile.SetCallbacks(cr.startCountdown, cr.adjustLevel)
		cr.tiles = append(cr.tiles, tile)
	}

	cr.hasteLabel = widget.NewLabel(HasteLabelText)
	cr.hasteEntry = newHasteEntry(cr.commitHaste)
	cr.hasteEntry.SetPlaceHolder(cr.localization.GetText(KeyAbilityHaste))
	cr.hasteEntry.SetText(strconv.Itoa(cr.champion.AbilityHaste))
	cr.hasteEntry.OnChanged = cr.changeHaste
}

func (cr *ChampionRow) startCountdown(abilityID string) {
	if cr.onStart != nil {
		cr.onStart(cr.champion.Name, abilityID)
	}
}

func (cr *ChampionRow) adjustLevel(abilityID string, delta int) {
	if cr.onAdjust != nil {
		cr.onAdjust(cr.champion.Name, abilityID, delta)
	}
}

// changeHaste applies the value while typing without rewriting the entry
func (cr *ChampionRow) changeHaste(text string) {
	if cr.onHaste != nil {
		cr.onHaste(cr.champion.Name, text)
	}
}

// commitHaste applies the value and shows what was actually stored
func (cr *ChampionRow) commitHaste(text string) {
	if cr.onHaste == nil {
		return
	}
	haste := cr.onHaste(cr.champion.Name, text)
	if normalized := strconv.Itoa(haste); cr.hasteEntry.Text != normalized {
		cr.hasteEntry.SetText(normalized)
	}
}

// CreateRenderer creates the widget renderer
func (cr *ChampionRow) CreateRenderer() fyne.WidgetRenderer {
	tiles := container.NewHBox()
	for _, tile := range cr.tiles {
		tiles.Add(tile)
	}

	name := container.NewGridWrap(fyne.NewSize(NameLabelWidth, cr.nameLabel.MinSize().Height), cr.nameLabel)
	haste := container.NewHBox(
		cr.hasteLabel,
		container.NewGridWrap(fyne.NewSize(HasteEntryWidth, cr.hasteEntry.MinSize().Height), cr.hasteEntry),
	)

	content := container.NewVBox(
		container.NewBorder(nil, nil, name, haste, tiles),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(content)
}

// hasteEntry is an Entry that commits its value on submit and on focus loss
type hasteEntry struct {
	widget.Entry

	focused  bool
	onCommit func(text string)
}

func newHasteEntry(onCommit func(text string)) *hasteEntry {
	e := &hasteEntry{onCommit: onCommit}
	e.ExtendBaseWidget(e)
	e.OnSubmitted = func(text string) {
		e.commit()
	}
	return e
}

// FocusGained tracks focus so roster updates do not fight the user's typing
func (e *hasteEntry) FocusGained() {
	e.focused = true
	e.Entry.FocusGained()
}

// FocusLost commits the typed value
func (e *hasteEntry) FocusLost() {
	e.focused = false
	e.Entry.FocusLost()
	e.commit()
}

func (e *hasteEntry) commit() {
	if e.onCommit != nil {
		e.onCommit(e.Text)
	}
}
