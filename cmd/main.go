package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"roundclock/internal/core/interval"
	"roundclock/internal/i18n"
	"roundclock/internal/platform"
	"roundclock/internal/storage"
	"roundclock/internal/ui/preferences"
	"roundclock/internal/ui/tray"
	"roundclock/internal/ui/workout"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "RoundClock"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	config, err := storage.LoadConfig(appName)
	if err != nil {
		log.Printf("load config: %v (using defaults)", err)
	}

	var history *storage.History
	if opened, err := storage.OpenHistory(config.HistoryPath); err != nil {
		log.Printf("session history disabled: %v", err)
	} else {
		history = opened
		defer history.Close()
	}

	fyneApp := app.NewWithID("com.roundclock.app")
	engine := interval.New(config.Session, interval.Options{TickInterval: time.Second})

	var prefsWindow *preferences.Window
	mainWindow := workout.New(fyneApp, workout.Callbacks{
		OnStart:  engine.Start,
		OnPause:  engine.Pause,
		OnResume: engine.Resume,
		OnReset:  engine.Reset,
		OnSettings: func() {
			prefsWindow.Show()
		},
	})
	prefsWindow = preferences.New(fyneApp, preferences.FromSession(config.Session), func(updated preferences.Settings) {
		engine.UpdateConfig(updated.Session())
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: mainWindow.Show,
			OnTogglePause: func() {
				if engine.Running() {
					engine.Pause()
				} else {
					engine.Resume()
				}
			},
			OnReset: engine.Reset,
			OnQuit: func() {
				engine.Close()
				fyneApp.Quit()
			},
		})
	}

	mainWindow.SetState(engine.Snapshot(), engine.Config().Rounds)
	if history != nil {
		if count, err := history.CompletedCount(context.Background()); err == nil {
			mainWindow.SetCompletedCount(count)
		}
	}

	events := engine.Subscribe(16)
	go func() {
		for event := range events {
			if event.Type == interval.EventSessionComplete {
				recordCompletion(engine, history, mainWindow, event)
			}

			snap := engine.Snapshot()
			rounds := engine.Config().Rounds
			fyne.Do(func() {
				mainWindow.SetState(snap, rounds)
				if trayManager != nil {
					trayManager.SetPaused(!snap.Running && snap.Phase != interval.PhaseIdle)
					trayManager.SetStatus(statusText(snap))
				}
			})
		}
	}()

	mainWindow.SetOnClosed(func() {
		engine.Close()
	})
	mainWindow.ShowAndRun()
}

func recordCompletion(engine *interval.Timer, history *storage.History, mainWindow *workout.Window, event interval.Event) {
	if history == nil {
		return
	}
	session := engine.Config()
	record := storage.SessionRecord{
		Rounds:      event.Round,
		WorkSeconds: session.WorkDuration.Seconds(),
		RestSeconds: session.RestDuration.Seconds(),
		FinishedAt:  event.At,
	}
	if _, err := history.RecordSession(context.Background(), record); err != nil {
		log.Printf("record session: %v", err)
		return
	}
	if count, err := history.CompletedCount(context.Background()); err == nil {
		fyne.Do(func() {
			mainWindow.SetCompletedCount(count)
		})
	}
}

func statusText(snap interval.Snapshot) string {
	switch snap.Phase {
	case interval.PhaseWorking:
		return fmt.Sprintf("%s %s", i18n.T("Work"), workout.FormatClock(snap.Remaining))
	case interval.PhaseResting:
		return fmt.Sprintf("%s %s", i18n.T("Rest"), workout.FormatClock(snap.Remaining))
	}
	return i18n.T("Ready")
}
