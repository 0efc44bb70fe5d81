// Package i18n provides the UI string translations. The language is
// detected from the system locale once at startup; set ROUNDCLOCK_LANG
// to override it.
package i18n

import (
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"de": "Start",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"de": "Pause",
	},
	"Resume": {
		"pt": "Continuar",
		"es": "Continuar",
		"de": "Fortsetzen",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"de": "Zurücksetzen",
	},
	"Work": {
		"pt": "Trabalho",
		"es": "Trabajo",
		"de": "Arbeit",
	},
	"Rest": {
		"pt": "Descanso",
		"es": "Descanso",
		"de": "Erholung",
	},
	"Ready": {
		"pt": "Pronto",
		"es": "Listo",
		"de": "Bereit",
	},
	"Round %d of %d": {
		"pt": "Round %d de %d",
		"es": "Ronda %d de %d",
		"de": "Runde %d von %d",
	},
	"Rounds": {
		"pt": "Rounds",
		"es": "Rondas",
		"de": "Runden",
	},
	"Work seconds": {
		"pt": "Segundos de trabalho",
		"es": "Segundos de trabajo",
		"de": "Arbeitssekunden",
	},
	"Rest seconds": {
		"pt": "Segundos de descanso",
		"es": "Segundos de descanso",
		"de": "Erholungssekunden",
	},
	"Settings": {
		"pt": "Configurações",
		"es": "Ajustes",
		"de": "Einstellungen",
	},
	"Apply": {
		"pt": "Aplicar",
		"es": "Aplicar",
		"de": "Übernehmen",
	},
	"Cancel": {
		"pt": "Cancelar",
		"es": "Cancelar",
		"de": "Abbrechen",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"de": "Beenden",
	},
	"Sessions completed: %d": {
		"pt": "Sessões concluídas: %d",
		"es": "Sesiones completadas: %d",
		"de": "Abgeschlossene Einheiten: %d",
	},
}

func init() {
	if forced := strings.TrimSpace(os.Getenv("ROUNDCLOCK_LANG")); forced != "" {
		lang = forced
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		lang = "en"
		return
	}
	lang = matchLanguage(userLocales[0])
}

// T returns the translation of an English UI string for the active
// language, or the string itself when no translation exists.
func T(key string) string {
	if lang == "en" || lang == "" {
		return key
	}
	if entry, ok := translations[key]; ok {
		if translated, ok := entry[lang]; ok {
			return translated
		}
	}
	return key
}

func matchLanguage(userLocale string) string {
	switch {
	case strings.HasPrefix(userLocale, "pt"):
		return "pt"
	case strings.HasPrefix(userLocale, "es"):
		return "es"
	case strings.HasPrefix(userLocale, "de"):
		return "de"
	}
	return "en"
}
