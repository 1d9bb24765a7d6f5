package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindPolishToml_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	manifest := filepath.Join(root, "polish.toml")
	if err := os.WriteFile(manifest, []byte("[eval]\npower = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findPolishToml(nested)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if path != manifest {
		t.Errorf("found %q, want %q", path, manifest)
	}
}

func TestFindPolishToml_NotFound(t *testing.T) {
	_, ok, err := findPolishToml(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("unexpectedly found a manifest")
	}
}

func TestLoadConfig_ParsesSections(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polish.toml")
	content := "[eval]\nmax_depth = 64\npower = true\nprecision = 2\n\n[repl]\nhistory_size = 50\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Eval.MaxDepth != 64 || !cfg.Eval.Power || cfg.Eval.Precision != 2 {
		t.Errorf("eval section = %+v", cfg.Eval)
	}
	if cfg.Repl.HistorySize != 50 {
		t.Errorf("repl section = %+v", cfg.Repl)
	}
}

func TestLoadConfig_DefaultsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "polish.toml")
	if err := os.WriteFile(path, []byte("[eval]\npower = true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	// Unset precision must stay at the "shortest" default, not zero.
	if cfg.Eval.Precision != -1 {
		t.Errorf("precision = %d, want -1", cfg.Eval.Precision)
	}
	if cfg.Eval.MaxDepth != 0 {
		t.Errorf("max_depth = %d, want 0", cfg.Eval.MaxDepth)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{6, -1, "6"},
		{2.5, -1, "2.5"},
		{2.5, 3, "2.500"},
		{1.0 / 3.0, 2, "0.33"},
		{1e21, -1, "1e+21"},
	}
	for _, tt := range tests {
		if got := formatValue(tt.v, tt.precision); got != tt.want {
			t.Errorf("formatValue(%v, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
		}
	}
}
