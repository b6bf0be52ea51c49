package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/chime-player/chime/internal/model"
	"github.com/chime-player/chime/internal/platform"
	"github.com/chime-player/chime/internal/playback"
	"github.com/chime-player/chime/internal/playlist"
	"github.com/chime-player/chime/internal/session"
)

// audioExtensionFilter builds the picker filter from the supported extensions
func audioExtensionFilter() storage.FileFilter {
	extensions := make([]string, 0, len(platform.SupportedAudioExtensions))
	for _, ext := range platform.SupportedAudioExtensions {
		extensions = append(extensions, "."+ext)
	}
	return storage.NewExtensionFileFilter(extensions)
}

// Transport handlers

func (ui *RootUI) onPlayClick() {
	ui.controller.PlayOrResume()
}

func (ui *RootUI) onPauseClick() {
	ui.controller.TogglePause()
}

func (ui *RootUI) onStopClick() {
	ui.controller.Stop()
}

func (ui *RootUI) onPreviousClick() {
	ui.controller.Previous()
}

func (ui *RootUI) onNextClick() {
	ui.controller.Next()
}

// Seek handlers. OnChanged fires for every slider movement, including
// programmatic ones; only a user-initiated change starts a drag.

func (ui *RootUI) onSeekChanged(value float64) {
	if ui.seekProgrammatic {
		return
	}
	if !ui.controller.IsSeeking() {
		ui.controller.BeginSeek()
	}
}

func (ui *RootUI) onSeekEnded(value float64) {
	if ui.seekProgrammatic {
		return
	}
	ui.controller.EndSeek(value / SeekSliderMax)
}

// onAddTracks opens the file picker and appends the chosen file. The picker
// is single-file; adding several tracks means invoking Add repeatedly or
// dropping files onto the window.
func (ui *RootUI) onAddTracks() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		added := ui.addPaths([]string{path})
		if added == 0 {
			ui.showNotice(ui.localization.GetText(KeyNoTracksAdded))
			return
		}
		ui.showNotice(fmt.Sprintf(ui.localization.GetText(KeyTracksAdded), added))
	}, ui.window)
	fileDialog.SetFilter(audioExtensionFilter())
	fileDialog.Show()
}

// addPaths appends every supported, existing path to the registry and
// returns the accepted count.
func (ui *RootUI) addPaths(paths []string) int {
	added := 0
	for _, path := range paths {
		if !ui.isAcceptable(path) {
			log.Printf("ui: skipping unsupported or missing file: %s", path)
			continue
		}
		ui.registry.Add(model.NewTrack(path))
		added++
	}
	if added > 0 {
		ui.trackList.Refresh()
	}
	return added
}

func (ui *RootUI) isAcceptable(path string) bool {
	return platform.IsSupportedAudio(path) && platform.FileExists(path)
}

// onRemoveTrack removes the selected playlist row. With no selection it is
// a silent no-op.
func (ui *RootUI) onRemoveTrack() {
	row := ui.selectedRow
	if row < 0 || row >= ui.registry.Len() {
		return
	}

	ui.registry.RemoveAt(row)
	ui.controller.HandleTrackRemoved(row)

	ui.trackList.UnselectAll()
	ui.selectedRow = playback.NoIndex
	ui.trackList.Refresh()
}

// onSavePlaylist exports the registry to an .m3u file chosen by the user
func (ui *RootUI) onSavePlaylist() {
	if ui.registry.Len() == 0 {
		ui.showNotice(ui.localization.GetText(KeyEmptyPlaylist))
		return
	}

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := playlist.SaveM3U(path, ui.registry.Tracks()); err != nil {
			log.Printf("ui: saving playlist to %s failed: %v", path, err)
			ui.showNotice(ui.localization.GetText(KeySaveError))
			return
		}
		ui.showNotice(ui.localization.GetText(KeyPlaylistSaved))
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".m3u"}))
	fileDialog.SetFileName("playlist.m3u")
	fileDialog.Show()
}

// onLoadPlaylist replaces the registry with the contents of a chosen .m3u
// file. A failed load leaves the current playlist untouched.
func (ui *RootUI) onLoadPlaylist() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		tracks, err := playlist.LoadM3U(path)
		if err != nil {
			log.Printf("ui: loading playlist from %s failed: %v", path, err)
			ui.showNotice(ui.localization.GetText(KeyLoadError))
			return
		}

		ui.controller.Stop()
		ui.controller.ClearCurrent()
		ui.registry.Clear()
		for _, track := range tracks {
			ui.registry.Add(track)
		}

		ui.trackList.UnselectAll()
		ui.selectedRow = playback.NoIndex
		ui.applyTrackCleared()
		ui.showNotice(ui.localization.GetText(KeyPlaylistLoaded))
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".m3u"}))
	fileDialog.Show()
}

// onDropped handles files dropped onto the window. Unsupported and missing
// files are filtered out; the accepted count is reported as a notice.
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}

	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		paths = append(paths, uri.Path())
	}

	added := ui.addPaths(paths)
	if added == 0 {
		ui.showNotice(ui.localization.GetText(KeyNoTracksAdded))
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoTracksAdded)), ui.window.Canvas())
		return
	}
	ui.showNotice(fmt.Sprintf(ui.localization.GetText(KeyTracksAdded), added))
}

// restoreSession rebuilds the previous session on startup: the playlist,
// the volume (saved or default), and the last track bound paused at its
// saved position.
func (ui *RootUI) restoreSession() {
	snap := ui.store.Restore()

	for _, track := range snap.Tracks {
		ui.registry.Add(track)
	}
	if len(snap.Tracks) > 0 {
		ui.trackList.Refresh()
	}

	volume := ui.settings.GetDefaultVolume()
	if snap.HasVolume {
		volume = snap.Volume
	}
	ui.controller.SetVolume(volume)
	ui.volumeSlider.SetValue(volume * VolumeSliderMax)

	if snap.CurrentIndex != playback.NoIndex {
		ui.controller.RestoreAt(snap.CurrentIndex, snap.PositionMs)
	}

	log.Printf("ui: session restored: %d tracks, volume %.2f, index %d",
		len(snap.Tracks), volume, snap.CurrentIndex)
}

// saveSession captures the current playlist, volume, and bound track
func (ui *RootUI) saveSession() {
	ui.store.Save(session.Snapshot{
		Tracks:       ui.registry.Tracks(),
		Volume:       ui.controller.Volume(),
		HasVolume:    true,
		CurrentIndex: ui.controller.CurrentIndex(),
		PositionMs:   ui.controller.Position(),
	})
	log.Printf("ui: session saved to %s", ui.store.Dir())
}
