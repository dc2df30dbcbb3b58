package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "lol-cooldowns.png"
)

// LoadLogoResource loads the application icon from the working directory
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// PlaceholderIcon is shown on tiles whose ability icon could not be loaded
func PlaceholderIcon() fyne.Resource {
	return theme.QuestionIcon()
}
