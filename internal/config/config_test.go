package config

import (
	"log/slog"
	"os"
	"testing"

	"golang.org/x/text/language"

	"github.com/goliatone/go-answerfmt/pkg/layout"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ANSWERFMT_LOCALE", "ANSWERFMT_SCREEN", "ANSWERFMT_ITEMSETS_DB", "ANSWERFMT_LOG_LEVEL"} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Locale != "en-US" || cfg.Screen != layout.ScreenNormal || cfg.ItemsetsDB != ":memory:" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ANSWERFMT_LOCALE", "de-DE")
	t.Setenv("ANSWERFMT_SCREEN", "xlarge")
	t.Setenv("ANSWERFMT_ITEMSETS_DB", "/tmp/itemsets.db")
	t.Setenv("ANSWERFMT_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Screen != layout.ScreenXLarge || cfg.ItemsetsDB != "/tmp/itemsets.db" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	tag, err := cfg.Tag()
	if err != nil || tag != language.MustParse("de-DE") {
		t.Fatalf("unexpected tag %v (%v)", tag, err)
	}
	level, err := cfg.Level()
	if err != nil || level != slog.LevelDebug {
		t.Fatalf("unexpected level %v (%v)", level, err)
	}
}

func TestLoadRejectsBadScreen(t *testing.T) {
	t.Setenv("ANSWERFMT_SCREEN", "enormous")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown screen size")
	}
}

func TestTagAndLevelErrors(t *testing.T) {
	cfg := Config{Locale: "not a locale!", LogLevel: "loud"}
	if _, err := cfg.Tag(); err == nil {
		t.Fatalf("expected locale error")
	}
	if _, err := cfg.Level(); err == nil {
		t.Fatalf("expected level error")
	}
}
