package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconMinus    = "-"
	IconPlus     = "+"
)

// Text fragments
const (
	HasteLabelText   = "AH"
	SuggestionFormat = "%s (%s %s?)"
)

// Layout sizing (ChampionRow / AbilityTile)
const (
	TileIconSize     float32 = 30
	TileButtonWidth  float32 = 18
	TileButtonHeight float32 = 18
	TileOverlayText  float32 = 11

	NameLabelWidth  float32 = 96
	HasteEntryWidth float32 = 48
)

// Cooldown overlay: dark translucent square over the icon
const (
	OverlayAlpha uint8 = 160
)

// Toast sizing
const (
	ToastMargin float32 = 8
)

// Background work
const (
	AddChampionTimeout = 30 * time.Second
	IconFetchTimeout   = 30 * time.Second
)
