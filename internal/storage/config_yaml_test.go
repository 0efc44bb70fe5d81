package storage

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestApplyFileConfig(t *testing.T) {
	config := AppConfig{Session: DefaultSession(), HistoryPath: "/tmp/history.db"}

	raw := []byte("rounds: 5\nwork_seconds: 45\nrest_seconds: 15.5\nhistory_path: /data/rounds.db\n")
	var fileData yamlConfig
	if err := yaml.Unmarshal(raw, &fileData); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	applyFileConfig(&config, fileData)

	if config.Session.Rounds != 5 {
		t.Errorf("Rounds = %d, want 5", config.Session.Rounds)
	}
	if config.Session.WorkDuration != 45*time.Second {
		t.Errorf("WorkDuration = %v, want 45s", config.Session.WorkDuration)
	}
	if config.Session.RestDuration != 15500*time.Millisecond {
		t.Errorf("RestDuration = %v, want 15.5s", config.Session.RestDuration)
	}
	if config.HistoryPath != "/data/rounds.db" {
		t.Errorf("HistoryPath = %q, want /data/rounds.db", config.HistoryPath)
	}
}

func TestApplyFileConfig_IgnoresNonPositiveValues(t *testing.T) {
	config := AppConfig{Session: DefaultSession(), HistoryPath: "/tmp/history.db"}
	defaults := config

	applyFileConfig(&config, yamlConfig{Rounds: 0, WorkSeconds: -3, RestSeconds: 0})

	if config != defaults {
		t.Errorf("non-positive values overrode defaults: %+v", config)
	}
}

func TestDefaultSession(t *testing.T) {
	session := DefaultSession()
	if session.Rounds != 8 || session.WorkDuration != 20*time.Second || session.RestDuration != 10*time.Second {
		t.Errorf("DefaultSession = %+v, want 8 rounds of 20s/10s", session)
	}
}
