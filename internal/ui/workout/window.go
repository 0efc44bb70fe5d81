// Package workout implements the main window. It renders engine state
// and forwards button presses; no timer logic lives here.
package workout

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"roundclock/internal/core/interval"
	"roundclock/internal/i18n"
)

const countdownFontSize float32 = 64.0

// Callbacks defines the control handlers behind the window buttons.
type Callbacks struct {
	OnStart    func()
	OnPause    func()
	OnResume   func()
	OnReset    func()
	OnSettings func()
}

// Window is the main workout display.
type Window struct {
	window    fyne.Window
	callbacks Callbacks

	phaseLabel  *widget.Label
	countdown   *canvas.Text
	progressBar *widget.ProgressBar
	roundLabel  *widget.Label
	totalLabel  *widget.Label

	startButton *widget.Button
	pauseButton *widget.Button
	resetButton *widget.Button

	running   bool
	remaining time.Duration
}

// New creates the main window with the provided control callbacks.
func New(app fyne.App, callbacks Callbacks) *Window {
	window := app.NewWindow("RoundClock")

	phaseLabel := widget.NewLabelWithStyle(i18n.T("Ready"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	countdown := canvas.NewText(FormatClock(0), color.White)
	countdown.TextSize = countdownFontSize
	countdown.Alignment = fyne.TextAlignCenter
	countdown.TextStyle = fyne.TextStyle{Monospace: true}

	progressBar := widget.NewProgressBar()
	roundLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{})
	totalLabel := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	display := &Window{
		window:      window,
		callbacks:   callbacks,
		phaseLabel:  phaseLabel,
		countdown:   countdown,
		progressBar: progressBar,
		roundLabel:  roundLabel,
		totalLabel:  totalLabel,
	}

	display.startButton = widget.NewButton(i18n.T("Start"), func() {
		if display.callbacks.OnStart != nil {
			display.callbacks.OnStart()
		}
	})
	display.pauseButton = widget.NewButton(i18n.T("Pause"), display.handlePauseResume)
	display.resetButton = widget.NewButton(i18n.T("Reset"), func() {
		if display.callbacks.OnReset != nil {
			display.callbacks.OnReset()
		}
	})
	settingsButton := widget.NewButton(i18n.T("Settings"), func() {
		if display.callbacks.OnSettings != nil {
			display.callbacks.OnSettings()
		}
	})

	display.pauseButton.Disable()

	controls := container.NewGridWithColumns(4,
		display.startButton, display.pauseButton, display.resetButton, settingsButton)

	window.SetContent(container.NewVBox(
		phaseLabel,
		countdown,
		progressBar,
		roundLabel,
		totalLabel,
		controls,
	))
	window.Resize(fyne.NewSize(360, 320))

	return display
}

// ShowAndRun displays the window and enters the event loop.
func (display *Window) ShowAndRun() {
	display.window.ShowAndRun()
}

// Show raises the window, e.g. from the tray menu.
func (display *Window) Show() {
	display.window.Show()
	display.window.RequestFocus()
}

// SetOnClosed registers the window close handler.
func (display *Window) SetOnClosed(handler func()) {
	display.window.SetOnClosed(handler)
}

// SetState renders an engine snapshot. Must run on the UI thread.
func (display *Window) SetState(snap interval.Snapshot, totalRounds int) {
	display.running = snap.Running
	display.remaining = snap.Remaining

	display.phaseLabel.SetText(phaseText(snap.Phase))
	display.countdown.Text = FormatClock(snap.Remaining)
	display.countdown.Refresh()
	display.progressBar.SetValue(clampUnit(snap.Progress))

	if snap.Phase == interval.PhaseIdle {
		display.roundLabel.SetText("")
	} else {
		display.roundLabel.SetText(fmt.Sprintf(i18n.T("Round %d of %d"), snap.Round, totalRounds))
	}

	display.refreshButtons(snap)
}

// SetCompletedCount updates the session total shown under the counter.
func (display *Window) SetCompletedCount(count int) {
	display.totalLabel.SetText(fmt.Sprintf(i18n.T("Sessions completed: %d"), count))
}

// handlePauseResume dispatches the toggle based on the last rendered
// state; the engine's own guards make a stale dispatch harmless.
func (display *Window) handlePauseResume() {
	if display.running {
		if display.callbacks.OnPause != nil {
			display.callbacks.OnPause()
		}
		return
	}
	if display.callbacks.OnResume != nil {
		display.callbacks.OnResume()
	}
}

func (display *Window) refreshButtons(snap interval.Snapshot) {
	switch {
	case snap.Running:
		display.startButton.Disable()
		display.pauseButton.SetText(i18n.T("Pause"))
		display.pauseButton.Enable()
	case snap.Phase != interval.PhaseIdle && snap.Remaining > 0:
		// Paused mid-phase: resumable.
		display.startButton.Enable()
		display.pauseButton.SetText(i18n.T("Resume"))
		display.pauseButton.Enable()
	default:
		display.startButton.Enable()
		display.pauseButton.SetText(i18n.T("Pause"))
		display.pauseButton.Disable()
	}
}

func phaseText(phase interval.Phase) string {
	switch phase {
	case interval.PhaseWorking:
		return i18n.T("Work")
	case interval.PhaseResting:
		return i18n.T("Rest")
	}
	return i18n.T("Ready")
}

// FormatClock renders a countdown as mm:ss. Negative values (possible
// for one tick with fractional durations) display as zero.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
