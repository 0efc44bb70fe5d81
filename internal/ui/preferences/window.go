// Package preferences implements the session settings window. It only
// edits the configuration; all timer behavior stays in the engine.
package preferences

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"roundclock/internal/i18n"
)

// Window handles the settings UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onApply  func(Settings)
	rounds   *widget.Entry
	workSec  *widget.Entry
	restSec  *widget.Entry
}

// New creates a settings window. onApply receives the parsed settings
// whenever the user applies them.
func New(app fyne.App, settings Settings, onApply func(Settings)) *Window {
	window := app.NewWindow(i18n.T("Settings"))

	rounds := widget.NewEntry()
	workSec := widget.NewEntry()
	restSec := widget.NewEntry()

	form := container.NewVBox(
		container.NewHBox(widget.NewLabel(i18n.T("Rounds")), layout.NewSpacer(), rounds),
		container.NewHBox(widget.NewLabel(i18n.T("Work seconds")), layout.NewSpacer(), workSec),
		container.NewHBox(widget.NewLabel(i18n.T("Rest seconds")), layout.NewSpacer(), restSec),
	)

	applyButton := widget.NewButton(i18n.T("Apply"), nil)
	cancelButton := widget.NewButton(i18n.T("Cancel"), nil)
	buttons := container.NewHBox(applyButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(320, 220))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:   window,
		settings: settings,
		onApply:  onApply,
		rounds:   rounds,
		workSec:  workSec,
		restSec:  restSec,
	}
	prefs.fillEntries()

	applyButton.OnTapped = prefs.handleApply
	cancelButton.OnTapped = func() {
		prefs.fillEntries()
		window.Hide()
	}

	return prefs
}

// Show displays the settings window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

func (prefs *Window) fillEntries() {
	prefs.rounds.SetText(strconv.Itoa(prefs.settings.Rounds))
	prefs.workSec.SetText(formatSeconds(prefs.settings.WorkDuration))
	prefs.restSec.SetText(formatSeconds(prefs.settings.RestDuration))
}

// handleApply parses the entries; a field that does not parse keeps its
// previous value.
func (prefs *Window) handleApply() {
	if rounds, err := parseRounds(prefs.rounds.Text); err == nil {
		prefs.settings.Rounds = rounds
	}
	if work, err := parseSeconds(prefs.workSec.Text); err == nil {
		prefs.settings.WorkDuration = work
	}
	if rest, err := parseSeconds(prefs.restSec.Text); err == nil {
		prefs.settings.RestDuration = rest
	}
	prefs.fillEntries()

	if prefs.onApply != nil {
		prefs.onApply(prefs.settings)
	}
	prefs.window.Hide()
}
