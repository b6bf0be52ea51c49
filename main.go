package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/chime-player/chime/internal/config"
	"github.com/chime-player/chime/internal/media"
	"github.com/chime-player/chime/internal/platform"
	"github.com/chime-player/chime/internal/playback"
	"github.com/chime-player/chime/internal/playlist"
	"github.com/chime-player/chime/internal/session"
	"github.com/chime-player/chime/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.chime-player.chime"
	AppName = "Chime"
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.FullViewWidth, ui.FullViewHeight))

	// Overlay the optional config file onto the preferences-backed settings
	settings := config.NewSettings(myApp)
	if fileCfg, err := config.Load(); err != nil {
		log.Printf("config file ignored: %v", err)
	} else {
		fileCfg.Apply(settings)
	}

	dataDir := settings.GetDataDirectory()
	if err := platform.CreateDirectoryIfNotExists(dataDir); err != nil {
		log.Printf("failed to ensure data dir: %v", err)
	}

	// Initialize services
	store, err := session.NewStore(dataDir)
	if err != nil {
		log.Printf("session store unavailable at %s: %v", dataDir, err)
		if store, err = session.NewStore(platform.DefaultDataDir()); err != nil {
			log.Fatalf("no writable session directory: %v", err)
		}
	}

	registry := playlist.NewRegistry()
	mediaSvc := media.NewService()
	defer mediaSvc.Close()

	controller := playback.NewController(registry, mediaSvc)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, registry, mediaSvc, controller, store)

	// Show and run
	myWindow.ShowAndRun()
}
