package main

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/poggle/internal/config"
)

func parsed(t *testing.T, args ...string) *configCase {
	t.Helper()
	root := newRootCmd()
	if err := root.ParseFlags(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	cfg, err := loadConfig(root)
	return &configCase{cfg: cfg, err: err}
}

type configCase struct {
	cfg *config.Config
	err error
}

func TestLoadConfigDefaults(t *testing.T) {
	c := parsed(t)
	if c.err != nil {
		t.Fatalf("unexpected error: %v", c.err)
	}
	if c.cfg.Layout != config.DefaultLayout {
		t.Errorf("expected layout %s, got %s", config.DefaultLayout, c.cfg.Layout)
	}
	if c.cfg.Scan != "first" || c.cfg.Reflection != "legacy" {
		t.Errorf("expected first/legacy, got %s/%s", c.cfg.Scan, c.cfg.Reflection)
	}
}

func TestLoadConfigFlags(t *testing.T) {
	c := parsed(t, "--layout", "pyramid", "--elasticity", "0.5", "--scan", "earliest", "--reflection", "mirror")
	if c.err != nil {
		t.Fatalf("unexpected error: %v", c.err)
	}
	if c.cfg.Layout != "pyramid" {
		t.Errorf("expected pyramid, got %s", c.cfg.Layout)
	}
	if c.cfg.Elasticity != 0.5 {
		t.Errorf("expected elasticity 0.5, got %v", c.cfg.Elasticity)
	}
	if c.cfg.Scan != "earliest" || c.cfg.Reflection != "mirror" {
		t.Errorf("expected earliest/mirror, got %s/%s", c.cfg.Scan, c.cfg.Reflection)
	}
}

func TestLoadConfigPreset(t *testing.T) {
	c := parsed(t, "--layout", "grid", "--preset", "pachinko")
	if c.err != nil {
		t.Fatalf("unexpected error: %v", c.err)
	}
	if c.cfg.Layout != "grid" || c.cfg.Elasticity != 0.6 || c.cfg.Scan != "earliest" {
		t.Errorf("preset not applied: %+v", c.cfg)
	}

	c = parsed(t, "--layout", "grid", "--preset", "pachinko", "--elasticity", "0.7")
	if c.err != nil {
		t.Fatalf("unexpected error: %v", c.err)
	}
	if c.cfg.Elasticity != 0.7 {
		t.Errorf("flag should override preset, got %v", c.cfg.Elasticity)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.yaml")
	cfg := config.DefaultConfig()
	cfg.Layout = "ring"
	cfg.Elasticity = 0.8
	if err := config.Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	c := parsed(t, "--config", path)
	if c.err != nil {
		t.Fatalf("unexpected error: %v", c.err)
	}
	if c.cfg.Layout != "ring" || c.cfg.Elasticity != 0.8 {
		t.Errorf("file not applied: %+v", c.cfg)
	}

	c = parsed(t, "--config", path, "--scan", "earliest")
	if c.err != nil {
		t.Fatalf("unexpected error: %v", c.err)
	}
	if c.cfg.Layout != "ring" || c.cfg.Scan != "earliest" {
		t.Errorf("expected file layout with flag scan, got %+v", c.cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown preset", []string{"--preset", "nope"}},
		{"preset of another layout", []string{"--layout", "classic", "--preset", "orbit"}},
		{"bad elasticity", []string{"--elasticity", "1.5"}},
		{"bad scan", []string{"--scan", "sideways"}},
		{"missing file", []string{"--config", filepath.Join(t.TempDir(), "missing.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if c := parsed(t, tt.args...); c.err == nil {
				t.Errorf("expected error for %v", tt.args)
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Layout = "grid"
	b, err := newBoard(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.NumPegs() != 108 {
		t.Errorf("expected 108 pegs, got %d", b.NumPegs())
	}
}
