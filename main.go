package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/lol-cooldowns/internal/config"
	"github.com/ytget/lol-cooldowns/internal/cooldown"
	"github.com/ytget/lol-cooldowns/internal/ddragon"
	"github.com/ytget/lol-cooldowns/internal/roster"
	"github.com/ytget/lol-cooldowns/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.lol-cooldowns"
	AppName = "LoL Cooldowns"
)

func main() {
	// Log version information
	fmt.Printf("LoL Cooldowns v%s starting...\n", version)

	configPath := config.DefaultConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config %s, using defaults: %v", configPath, err)
	}
	log.Printf("Data Dragon %s (%s) from %s", cfg.DataVersion, cfg.Locale, cfg.BaseURL)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)

	settings := config.NewSettings(myApp)
	width, height := settings.GetWindowSize()
	myWindow.Resize(fyne.NewSize(float32(width), float32(height)))

	// Initialize services
	client, err := ddragon.NewClient(cfg)
	if err != nil {
		log.Printf("Invalid Data Dragon settings, using defaults: %v", err)
		cfg = config.Default()
		client, err = ddragon.NewClient(cfg)
		if err != nil {
			log.Fatalf("Failed to create Data Dragon client: %v", err)
		}
	}

	tracker := roster.NewRoster(client)
	timer := cooldown.NewTimer(tracker)

	ui.NewRootUI(myWindow, myApp, tracker, timer, client, cfg)

	myWindow.SetOnClosed(func() {
		active := timer.Active()
		timer.Stop()
		size := myWindow.Canvas().Size()
		settings.SetWindowSize(int(size.Width), int(size.Height))
		log.Printf("Window closed, %d countdowns stopped", active)
	})

	// Show and run
	myWindow.ShowAndRun()
}
