package ui

// Package ui contains the Fyne-based widget window. It wires the champion
// entry to the roster, renders one row of ability tiles per tracked champion
// and paints countdown overlays from timer updates. All UI strings are
// localized via Localization.
