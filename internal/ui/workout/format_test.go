package workout

import (
	"testing"
	"time"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		remaining time.Duration
		want      string
	}{
		{0, "00:00"},
		{9 * time.Second, "00:09"},
		{90 * time.Second, "01:30"},
		{61 * time.Minute, "61:00"},
		{-500 * time.Millisecond, "00:00"},
		{2500 * time.Millisecond, "00:02"},
	}
	for _, c := range cases {
		if got := FormatClock(c.remaining); got != c.want {
			t.Errorf("FormatClock(%v) = %q, want %q", c.remaining, got, c.want)
		}
	}
}

func TestClampUnit(t *testing.T) {
	if got := clampUnit(-0.25); got != 0 {
		t.Errorf("clampUnit(-0.25) = %v, want 0", got)
	}
	if got := clampUnit(1.2); got != 1 {
		t.Errorf("clampUnit(1.2) = %v, want 1", got)
	}
	if got := clampUnit(0.5); got != 0.5 {
		t.Errorf("clampUnit(0.5) = %v, want 0.5", got)
	}
}
