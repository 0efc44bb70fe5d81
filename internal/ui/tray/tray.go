// Package tray manages the system tray menu.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"roundclock/internal/i18n"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnReset       func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	callbacks   Callbacks
	paused      bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: i18n.T("Ready"),
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true

	manager.pauseItem = fyne.NewMenuItem(i18n.T("Pause"), func() {
		if manager.callbacks.OnTogglePause != nil {
			manager.callbacks.OnTogglePause()
		}
	})

	manager.refreshStatus()
	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetPaused updates the pause toggle label.
func (manager *Manager) SetPaused(paused bool) {
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = i18n.T("Resume")
	} else {
		manager.pauseItem.Label = i18n.T("Pause")
	}
	manager.refreshStatus()
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if manager.paused {
		status = fmt.Sprintf("%s (%s)", status, i18n.T("Pause"))
	}
	manager.statusItem.Label = status
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("RoundClock",
		manager.statusItem,
		fyne.NewMenuItem("RoundClock", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.pauseItem,
		fyne.NewMenuItem(i18n.T("Reset"), func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItem(i18n.T("Quit"), func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
