package main

import (
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

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.chime-player.chime")
	myWindow := myApp.NewWindow("Chime")
	myWindow.Resize(fyne.NewSize(ui.FullViewWidth, ui.FullViewHeight))

	settings := config.NewSettings(myApp)
	dataDir := settings.GetDataDirectory()
	platform.CreateDirectoryIfNotExists(dataDir)

	store, err := session.NewStore(dataDir)
	if err != nil {
		panic(err)
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
