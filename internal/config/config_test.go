package config

import (
	"log/slog"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != "8080" {
		t.Errorf("Port = %q, want 8080", c.Port)
	}
	if c.DatabasePath != "devfolio.db" {
		t.Errorf("DatabasePath = %q, want devfolio.db", c.DatabasePath)
	}
	if !c.Compression {
		t.Error("Compression should default to true")
	}
	if c.LoginBurst != 5 || c.ContactBurst != 3 {
		t.Errorf("unexpected burst defaults: %v / %v", c.LoginBurst, c.ContactBurst)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("COMPRESSION", "false")

	c, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != "9999" {
		t.Errorf("Port = %q, want 9999", c.Port)
	}
	if c.Compression {
		t.Error("Compression should be overridden to false")
	}
	if c.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %v, want debug", c.SlogLevel())
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range tests {
		c := Config{LogLevel: tc.in}
		if got := c.SlogLevel(); got != tc.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
