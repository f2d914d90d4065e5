package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emberterm/ember/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func TestNewLoader_AbsentConfigResolvesToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := newLoader("")()
	if err != nil {
		t.Fatalf("loader returned error: %v", err)
	}
	if path != "" {
		t.Fatalf("path = %q, want empty for built-in defaults", path)
	}
	if cfg != config.DefaultConfig() {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestNewLoader_ExplicitMissingPathStaysError(t *testing.T) {
	_, _, err := newLoader(filepath.Join(t.TempDir(), "absent.yml"))()
	if !errors.Is(err, config.ErrNotFound) {
		t.Fatalf("loader error = %v, want ErrNotFound", err)
	}
}

func TestNewLoader_ReadsProbedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	primary := filepath.Join(home, ".config", config.FileName)
	writeFile(t, primary, "render_timer: true\n")

	cfg, path, err := newLoader("")()
	if err != nil {
		t.Fatalf("loader returned error: %v", err)
	}
	if path != primary {
		t.Fatalf("path = %q, want %q", path, primary)
	}
	if !cfg.RenderTimer() {
		t.Fatalf("RenderTimer = false, want true")
	}
}

func TestNewLoader_MalformedFileSurfacesSchemaError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", config.FileName), "font: [oops\n")

	_, _, err := newLoader("")()
	var schemaErr *config.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("loader error = %v (%T), want *SchemaError", err, err)
	}
}

func TestCheck_ReportsResolvedValues(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	primary := filepath.Join(home, ".config", config.FileName)
	writeFile(t, primary, "font:\n  family: Iosevka\n  style: Medium\n  size: 12.5\n  offset: {x: 0, y: -1}\n")

	var out strings.Builder
	if err := Check(Options{}, &out); err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	report := out.String()
	for _, want := range []string{primary + ": OK", "Iosevka", "12.5pt", "96 x 96", "render timer false"} {
		if !strings.Contains(report, want) {
			t.Fatalf("report = %q, want it to contain %q", report, want)
		}
	}
}

func TestCheck_ReportsDefaultsWhenNoFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var out strings.Builder
	if err := Check(Options{}, &out); err != nil {
		t.Fatalf("Check returned error: %v", err)
	}
	if !strings.Contains(out.String(), "built-in defaults") {
		t.Fatalf("report = %q, want defaults note", out.String())
	}
}

func TestCheck_FailureSetsError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, filepath.Join(home, ".config", config.FileName), "dpi:\n  x: 96.0\n")

	var out strings.Builder
	err := Check(Options{}, &out)
	var schemaErr *config.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("Check error = %v (%T), want *SchemaError", err, err)
	}
	if !strings.Contains(out.String(), "missing required key") {
		t.Fatalf("report = %q, want schema detail", out.String())
	}
}
