package config

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.DataFile != DefaultDataFile {
		t.Errorf("data file = %q", cfg.DataFile)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.LocaleTag() != language.English {
		t.Errorf("locale = %v", cfg.LocaleTag())
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "version: 1\ndata_file: work.json\nlog_level: debug\nlocale: de\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != "work.json" {
		t.Errorf("data file = %q", cfg.DataFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if cfg.LocaleTag() != language.German {
		t.Errorf("locale = %v", cfg.LocaleTag())
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "version: 1\nlog_level: warn\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataFile != DefaultDataFile {
		t.Errorf("expected default data file, got %q", cfg.DataFile)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
}

func TestLoad_RejectsBadLogLevel(t *testing.T) {
	path := writeConfig(t, "version: 1\nlog_level: loud\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for bad log_level")
	}
}

func TestLoad_RejectsBadLocale(t *testing.T) {
	path := writeConfig(t, "version: 1\nlocale: 'not a tag!!'\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for bad locale")
	}
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "version: [not closed\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg, err := LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault: %v", err)
	}
	if cfg.DataFile != DefaultDataFile {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	orig := &Config{Version: 1, DataFile: "custom.json", LogLevel: "error", Locale: "fr"}

	if err := Save(path, orig); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.DataFile != orig.DataFile || got.LogLevel != orig.LogLevel || got.Locale != orig.Locale {
		t.Errorf("round trip differs: %+v vs %+v", got, orig)
	}
}

func TestLocaleTag_FallsBackToEnglish(t *testing.T) {
	cfg := &Config{Locale: ""}
	if cfg.LocaleTag() != language.English {
		t.Errorf("empty locale should fall back to English")
	}
}
