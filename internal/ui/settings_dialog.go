package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/chime-player/chime/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	dataDirEntry *widget.Entry
	volumeSlider *widget.Slider
	volumeLabel  *widget.Label
}

// ShowSettingsDialog builds and shows the settings dialog. The onSaved
// callback fires after settings were written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Data directory selection
	sd.dataDirEntry = widget.NewEntry()
	sd.dataDirEntry.SetPlaceHolder("Session data directory")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	dataDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.dataDirEntry)

	// Default volume slider with a live percent readout
	sd.volumeLabel = widget.NewLabel("")
	sd.volumeSlider = widget.NewSlider(0, VolumeSliderMax)
	sd.volumeSlider.Step = 1
	sd.volumeSlider.OnChanged = func(value float64) {
		sd.volumeLabel.SetText(fmt.Sprintf("%d%%", int(value)))
	}
	volumeRow := container.NewBorder(nil, nil, nil, sd.volumeLabel, sd.volumeSlider)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyDataDirectory)+":"),
		dataDirRow,

		widget.NewLabel(sd.localization.GetText(KeyDefaultVolume)+":"),
		volumeRow,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(460, 260))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.dataDirEntry.SetText(sd.settings.GetDataDirectory())
	sd.volumeSlider.SetValue(sd.settings.GetDefaultVolume() * VolumeSliderMax)
	sd.volumeLabel.SetText(fmt.Sprintf("%d%%", int(sd.volumeSlider.Value)))
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.dataDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.dataDirEntry.Text; dir != "" {
		sd.settings.SetDataDirectory(dir)
	}

	sd.settings.SetDefaultVolume(sd.volumeSlider.Value / VolumeSliderMax)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
