package i18n

import "testing"

func TestMatchLanguage(t *testing.T) {
	cases := []struct {
		locale string
		want   string
	}{
		{"pt-BR", "pt"},
		{"es-ES", "es"},
		{"de-DE", "de"},
		{"en-US", "en"},
		{"ja-JP", "en"},
		{"", "en"},
	}
	for _, c := range cases {
		if got := matchLanguage(c.locale); got != c.want {
			t.Errorf("matchLanguage(%q) = %q, want %q", c.locale, got, c.want)
		}
	}
}

func TestT_FallsBackToKey(t *testing.T) {
	original := lang
	defer func() { lang = original }()

	lang = "pt"
	if got := T("Start"); got != "Iniciar" {
		t.Errorf("T(Start) = %q, want Iniciar", got)
	}
	if got := T("never translated"); got != "never translated" {
		t.Errorf("T fell through to %q, want the key itself", got)
	}

	lang = "en"
	if got := T("Start"); got != "Start" {
		t.Errorf("T(Start) in english = %q, want Start", got)
	}
}
