package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"homingai-bridge/config"
)

func TestLoadOrDefault_MissingFile(t *testing.T) {
	cfg, err := config.LoadOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}

	if cfg.HomingAI.BaseURL != "https://api.homingai.com" {
		t.Errorf("base_url: got %q", cfg.HomingAI.BaseURL)
	}
	if cfg.HomingAI.Timeout.Std() != 30*time.Second {
		t.Errorf("timeout: got %v", cfg.HomingAI.Timeout.Std())
	}
	if cfg.Store.Driver != "bolt" || cfg.Store.Path != "./homingai.db" {
		t.Errorf("store: got %+v", cfg.Store)
	}
	if cfg.Audio.Source != "http" || cfg.Audio.HTTPAddr != ":8080" || cfg.Audio.SampleRate != 16000 {
		t.Errorf("audio: got %+v", cfg.Audio)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("log: got %+v", cfg.Log)
	}
}

func TestLoad_ExpandsEnvAndKeepsValues(t *testing.T) {
	t.Setenv("HOMINGAI_TEST_AUTH", "satellite-secret")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
homingai:
  base_url: http://localhost:9000
  timeout: 5s
store:
  driver: memory
audio:
  source: file
  auth_token: ${HOMINGAI_TEST_AUTH}
log:
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HomingAI.BaseURL != "http://localhost:9000" || cfg.HomingAI.Timeout.Std() != 5*time.Second {
		t.Errorf("homingai: got %+v", cfg.HomingAI)
	}
	if cfg.Store.Driver != "memory" {
		t.Errorf("driver: got %q", cfg.Store.Driver)
	}
	if cfg.Audio.AuthToken != "satellite-secret" {
		t.Errorf("auth_token: got %q", cfg.Audio.AuthToken)
	}
	if cfg.Audio.FileDir != "./audio" || cfg.Log.Level != "info" || cfg.Log.Format != "json" {
		t.Errorf("defaults not merged: %+v %+v", cfg.Audio, cfg.Log)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "bad duration", yaml: "homingai:\n  timeout: soon\n"},
		{name: "unknown driver", yaml: "store:\n  driver: redis\n"},
		{name: "malformed", yaml: "homingai: [\n"},
		{name: "pushover without keys", yaml: "pushover:\n  enabled: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := config.Parse([]byte(tt.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
