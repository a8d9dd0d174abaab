package gconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewGUIConfig_MissingFileGivesDefaults(t *testing.T) {
	c, err := NewGUIConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	def := defaultConfig()
	if diff := cmp.Diff(&def, c); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGUIConfig_CorrectsBadValues(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tapchess.json")
	raw := `{"theme":"neon","cell_size":4,"assets_dir":"","log_level":"verbose","debug":true}`
	if err := os.WriteFile(file, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}
	c, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if c.Theme != "classic" {
		t.Errorf("Theme = %q, want classic", c.Theme)
	}
	if c.CellSize != 90 {
		t.Errorf("CellSize = %d, want 90", c.CellSize)
	}
	if c.AssetsDir != "assets" {
		t.Errorf("AssetsDir = %q, want assets", c.AssetsDir)
	}
	if c.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", c.LogLevel)
	}
	if !c.Debug {
		t.Error("Debug flag lost in correction")
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tapchess.json")
	want := &Config{Theme: "dark", CellSize: 64, AssetsDir: "art", LogLevel: "debug", Debug: true}
	if err := want.Save(file); err != nil {
		t.Fatal(err)
	}
	got, err := NewGUIConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestNewGUIConfig_MalformedJSON(t *testing.T) {
	file := filepath.Join(t.TempDir(), "tapchess.json")
	if err := os.WriteFile(file, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewGUIConfig(file); err == nil {
		t.Error("malformed config accepted")
	}
}
