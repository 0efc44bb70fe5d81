package preferences

import (
	"errors"
	"strconv"
	"time"

	"roundclock/internal/core/model"
)

// Settings defines the editable session parameters.
type Settings struct {
	Rounds       int
	WorkDuration time.Duration
	RestDuration time.Duration
}

// FromSession converts a session configuration into editable settings.
func FromSession(session model.SessionConfig) Settings {
	return Settings{
		Rounds:       session.Rounds,
		WorkDuration: session.WorkDuration,
		RestDuration: session.RestDuration,
	}
}

// Session converts settings back to a SessionConfig.
func (settings Settings) Session() model.SessionConfig {
	return model.SessionConfig{
		Rounds:       settings.Rounds,
		WorkDuration: settings.WorkDuration,
		RestDuration: settings.RestDuration,
	}
}

var errNotPositive = errors.New("value must be positive")

// parseRounds parses a round-count entry.
func parseRounds(text string) (int, error) {
	rounds, err := strconv.Atoi(text)
	if err != nil {
		return 0, err
	}
	if rounds <= 0 {
		return 0, errNotPositive
	}
	return rounds, nil
}

// parseSeconds parses a seconds entry, sub-second values included.
func parseSeconds(text string) (time.Duration, error) {
	seconds, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	if seconds <= 0 {
		return 0, errNotPositive
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// formatSeconds renders a duration for a seconds entry field.
func formatSeconds(duration time.Duration) string {
	return strconv.FormatFloat(duration.Seconds(), 'f', -1, 64)
}
