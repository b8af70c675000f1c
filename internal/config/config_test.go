package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points HOME at a temp dir so tests never touch the real config.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("INKPAD_DIR", "")
	return home
}

func writeConfigFile(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "inkpad")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != filepath.Join(home, "inkpad") {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.MediaDir != filepath.Join(cfg.DataDir, "media") {
		t.Errorf("MediaDir = %s", cfg.MediaDir)
	}
	if cfg.RecordCommand != "arecord" {
		t.Errorf("RecordCommand = %s", cfg.RecordCommand)
	}
	if cfg.MoveThrottleMs != 50 {
		t.Errorf("MoveThrottleMs = %d", cfg.MoveThrottleMs)
	}
}

func TestLoadConfigFileValues(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, `data_dir: /tmp/inkpad-test
record_command: ffmpeg
move_throttle_ms: 100
`)

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DataDir != "/tmp/inkpad-test" {
		t.Errorf("DataDir = %s", cfg.DataDir)
	}
	if cfg.RecordCommand != "ffmpeg" {
		t.Errorf("RecordCommand = %s", cfg.RecordCommand)
	}
	if cfg.MoveThrottleMs != 100 {
		t.Errorf("MoveThrottleMs = %d", cfg.MoveThrottleMs)
	}
}

func TestEnvOverridesConfigFile(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, "data_dir: /tmp/from-file\n")
	t.Setenv("INKPAD_DIR", "/tmp/from-env")

	cfg, err := Load(CLIFlags{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/from-env" {
		t.Errorf("DataDir = %s, want env value", cfg.DataDir)
	}
}

func TestFlagsOverrideEverything(t *testing.T) {
	home := isolate(t)
	writeConfigFile(t, home, "data_dir: /tmp/from-file\n")
	t.Setenv("INKPAD_DIR", "/tmp/from-env")

	cfg, err := Load(CLIFlags{DataDir: "/tmp/from-flag"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != "/tmp/from-flag" {
		t.Errorf("DataDir = %s, want flag value", cfg.DataDir)
	}
}

func TestExpandTilde(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(CLIFlags{DataDir: "~/notes"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataDir != filepath.Join(home, "notes") {
		t.Errorf("DataDir = %s, want expanded path", cfg.DataDir)
	}
}

func TestNotesFilePath(t *testing.T) {
	cfg := &Config{DataDir: "/data"}
	if got := cfg.NotesFilePath(); got != "/data/notes.jsonl" {
		t.Errorf("NotesFilePath = %s", got)
	}
}

func TestEnsureDirs(t *testing.T) {
	base := t.TempDir()
	cfg := &Config{
		DataDir:  filepath.Join(base, "data"),
		MediaDir: filepath.Join(base, "data", "media"),
	}
	if err := cfg.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	if _, err := os.Stat(cfg.MediaDir); err != nil {
		t.Errorf("media dir missing: %v", err)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	home := isolate(t)

	if err := EnsureConfigFile(); err != nil {
		t.Fatalf("EnsureConfigFile: %v", err)
	}

	path := filepath.Join(home, ".config", "inkpad", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file missing: %v", err)
	}

	// A second call leaves the existing file alone.
	if err := os.WriteFile(path, []byte("data_dir: /custom\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureConfigFile(); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "data_dir: /custom\n" {
		t.Error("EnsureConfigFile overwrote an existing file")
	}
}
