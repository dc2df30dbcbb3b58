package ui

import (
	"image"
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/lol-cooldowns/internal/cooldown"
	"github.com/ytget/lol-cooldowns/internal/model"
)

// AbilityTile shows one ability: icon with countdown overlay, rank and
// rank buttons
type AbilityTile struct {
	widget.BaseWidget

	ability model.AbilityState

	// UI components
	icon        *canvas.Image
	overlay     *canvas.Rectangle
	overlayText *canvas.Text
	iconArea    *tappableIcon
	levelLabel  *widget.Label
	minusBtn    *widget.Button
	plusBtn     *widget.Button

	// current countdown, empty when idle
	sessionID string

	// Callbacks
	onStart  func(abilityID string)
	onAdjust func(abilityID string, delta int)
}

// NewAbilityTile creates a new ability tile widget
func NewAbilityTile(ability model.AbilityState) *AbilityTile {
	at := &AbilityTile{ability: *ability.Clone()}
	at.ExtendBaseWidget(at)
	at.createUI()
	at.updateControls()
	return at
}

// SetCallbacks sets the action callbacks
func (at *AbilityTile) SetCallbacks(onStart func(abilityID string), onAdjust func(abilityID string, delta int)) {
	if onStart == nil {
		log.Printf("Warning: onStart callback is nil for ability %s", at.ability.ID)
	}
	if onAdjust == nil {
		log.Printf("Warning: onAdjust callback is nil for ability %s", at.ability.ID)
	}

	at.onStart = onStart
	at.onAdjust = onAdjust
}

// AbilityID returns the Data Dragon id of the ability
func (at *AbilityTile) AbilityID() string {
	return at.ability.ID
}

// SetAbility replaces the displayed ability state (rank changes)
func (at *AbilityTile) SetAbility(ability model.AbilityState) {
	at.ability = *ability.Clone()
	at.updateControls()
	at.Refresh()
}

// SetIcon shows the decoded icon, or the placeholder when img is nil
func (at *AbilityTile) SetIcon(img image.Image) {
	if img == nil {
		at.icon.Image = nil
		at.icon.Resource = PlaceholderIcon()
	} else {
		at.icon.Resource = nil
		at.icon.Image = img
	}
	at.icon.Refresh()
}

// ShowCountdown makes session the tile's current countdown and shows its
// first value. Updates from any other session are ignored from now on.
func (at *AbilityTile) ShowCountdown(session cooldown.Session) {
	at.sessionID = session.ID
	at.overlayText.Text = session.Label()
	at.overlay.Show()
	at.overlayText.Show()
	at.overlayText.Refresh()
}

// ApplyUpdate paints a timer update. It returns false when the update
// belongs to a session that is no longer shown on this tile.
func (at *AbilityTile) ApplyUpdate(update cooldown.Update) bool {
	if at.sessionID == "" || update.SessionID != at.sessionID {
		return false
	}

	if update.Done {
		at.sessionID = ""
		at.overlay.Hide()
		at.overlayText.Hide()
		return true
	}

	at.overlayText.Text = update.Label
	at.overlayText.Refresh()
	return true
}

// IsCounting reports whether an overlay is shown
func (at *AbilityTile) IsCounting() bool {
	return at.sessionID != ""
}

// OverlayText returns the countdown label currently shown
func (at *AbilityTile) OverlayText() string {
	if !at.IsCounting() {
		return ""
	}
	return at.overlayText.Text
}

// createUI creates all UI components for the tile
func (at *AbilityTile) createUI() {
	at.icon = canvas.NewImageFromResource(PlaceholderIcon())
	at.icon.FillMode = canvas.ImageFillContain
	at.icon.SetMinSize(fyne.NewSize(TileIconSize, TileIconSize))

	at.overlay = canvas.NewRectangle(themeColor(ColorNameCooldownOverlay))
	at.overlay.Hide()

	at.overlayText = canvas.NewText("", themeColor(ColorNameCooldownText))
	at.overlayText.TextSize = TileOverlayText
	at.overlayText.TextStyle = fyne.TextStyle{Bold: true}
	at.overlayText.Alignment = fyne.TextAlignCenter
	at.overlayText.Hide()

	stack := container.NewStack(at.icon, at.overlay, container.NewCenter(at.overlayText))
	at.iconArea = newTappableIcon(stack, at.onIconTapped)

	at.levelLabel = widget.NewLabel("")
	at.levelLabel.Alignment = fyne.TextAlignCenter

	at.minusBtn = widget.NewButton(IconMinus, func() { at.adjust(-1) })
	at.minusBtn.Importance = widget.LowImportance
	at.plusBtn = widget.NewButton(IconPlus, func() { at.adjust(1) })
	at.plusBtn.Importance = widget.LowImportance
}

// updateControls syncs the rank label and button states with the ability
func (at *AbilityTile) updateControls() {
	at.levelLabel.SetText(at.ability.LevelText())

	if at.ability.CanDecrement() {
		at.minusBtn.Enable()
	} else {
		at.minusBtn.Disable()
	}
	if at.ability.CanIncrement() {
		at.plusBtn.Enable()
	} else {
		at.plusBtn.Disable()
	}
}

func (at *AbilityTile) onIconTapped() {
	if at.onStart != nil {
		at.onStart(at.ability.ID)
	}
}

func (at *AbilityTile) adjust(delta int) {
	if at.onAdjust != nil {
		at.onAdjust(at.ability.ID, delta)
	}
}

// CreateRenderer creates the widget renderer
func (at *AbilityTile) CreateRenderer() fyne.WidgetRenderer {
	return &abilityTileRenderer{tile: at}
}

// abilityTileRenderer renders the ability tile widget
type abilityTileRenderer struct {
	tile   *AbilityTile
	layout *fyne.Container
}

// Layout arranges the components
func (r *abilityTileRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *abilityTileRenderer) MinSize() fyne.Size {
	if r.layout == nil {
		r.createLayout()
	}
	return r.layout.MinSize()
}

// Refresh updates the renderer
func (r *abilityTileRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *abilityTileRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *abilityTileRenderer) Destroy() {}

// createLayout stacks the icon above the rank controls
func (r *abilityTileRenderer) createLayout() {
	at := r.tile

	fixedButton := func(btn *widget.Button) fyne.CanvasObject {
		return container.NewGridWrap(fyne.NewSize(TileButtonWidth, TileButtonHeight), btn)
	}

	controls := container.NewHBox(
		fixedButton(at.minusBtn),
		at.levelLabel,
		fixedButton(at.plusBtn),
	)

	r.layout = container.NewVBox(
		container.NewCenter(at.iconArea),
		controls,
	)
}

// themeColor resolves a color from the current app theme
func themeColor(name fyne.ThemeColorName) color.Color {
	settings := fyne.CurrentApp().Settings()
	return settings.Theme().Color(name, settings.ThemeVariant())
}

// tappableIcon forwards taps on the icon stack
type tappableIcon struct {
	widget.BaseWidget

	content  fyne.CanvasObject
	onTapped func()
}

func newTappableIcon(content fyne.CanvasObject, onTapped func()) *tappableIcon {
	ti := &tappableIcon{content: content, onTapped: onTapped}
	ti.ExtendBaseWidget(ti)
	return ti
}

// Tapped starts the countdown
func (ti *tappableIcon) Tapped(*fyne.PointEvent) {
	if ti.onTapped != nil {
		ti.onTapped()
	}
}

// CreateRenderer creates the widget renderer
func (ti *tappableIcon) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ti.content)
}
