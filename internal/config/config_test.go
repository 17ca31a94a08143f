package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultYAML)
	if err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("controls:\n  coarse_step: 2\nsampling:\n  enemy_spacing: -1\nendless:\n  min_degree: 3\n  max_degree: 9\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Controls.CoarseStep != 2 {
		t.Errorf("CoarseStep = %v, expected 2", cfg.Controls.CoarseStep)
	}
	// Unset keys keep their defaults
	if cfg.Controls.FineStep != 0.1 {
		t.Errorf("FineStep = %v, expected default 0.1", cfg.Controls.FineStep)
	}
	// Invalid values are normalized
	if cfg.Sampling.EnemySpacing != 0.01 {
		t.Errorf("EnemySpacing = %v, expected normalized 0.01", cfg.Sampling.EnemySpacing)
	}
	if cfg.Endless.MinDegree != 3 || cfg.Endless.MaxDegree != 4 {
		t.Errorf("degrees = %d..%d, expected 3..4", cfg.Endless.MinDegree, cfg.Endless.MaxDegree)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("controls: [1, 2"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		enabled   bool
		initial   float64
		timeScale float64
	}{
		{DifficultyEasy, true, 0.0, 1.5},
		{DifficultyNormal, true, 0.3, 1.0},
		{DifficultyHard, true, 0.7, 0.75},
		{DifficultyFixed, false, 0.0, 1.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultConfig()
			ApplyPreset(&cfg, tc.preset)

			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.initial {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.initial)
			}
			if cfg.Difficulty.Scaling.TimeScale != tc.timeScale {
				t.Errorf("TimeScale = %v, expected %v", cfg.Difficulty.Scaling.TimeScale, tc.timeScale)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = (%q, %v), expected (normal, true)", p, ok)
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = (%q, %v), expected (hard, true)", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "levels", MaxAt: 4}
	dm := NewDifficultyManager(cfg)

	tests := []struct {
		cleared  int
		expected float64
	}{
		{0, 0.0},
		{2, 0.5},
		{4, 1.0},
		{40, 1.0},
	}
	for _, tc := range tests {
		if got := dm.Level(tc.cleared, 0); got != tc.expected {
			t.Errorf("Level(%d) = %v, expected %v", tc.cleared, got, tc.expected)
		}
	}

	if got := dm.Degree(2, 4, 0, 0); got != 2 {
		t.Errorf("Degree at start = %d, expected 2", got)
	}
	if got := dm.Degree(2, 4, 2, 0); got != 3 {
		t.Errorf("Degree halfway = %d, expected 3", got)
	}
	if got := dm.Degree(2, 4, 10, 0); got != 4 {
		t.Errorf("Degree at max = %d, expected 4", got)
	}
	if got := dm.Degree(3, 3, 10, 0); got != 3 {
		t.Errorf("Degree with a single choice = %d, expected 3", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DefaultConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Error("IsEnabled() = true, expected false")
	}
	if got := dm.Level(100, 100); got != 0.5 {
		t.Errorf("Level() with progression disabled = %v, expected 0.5", got)
	}

	cfg.InitialLevel = 7
	if got := NewDifficultyManager(cfg).Level(0, 0); got != 1 {
		t.Errorf("Level() with initial level 7 = %v, expected it clamped to 1", got)
	}
}

func TestDifficultyManagerTime(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:     ScalingConfig{TimeScale: 0},
	}
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 50); got != 0.5 {
		t.Errorf("Level(ticks=50) = %v, expected 0.5", got)
	}
	if got := dm.TimeScale(); got != 1.0 {
		t.Errorf("TimeScale() with zero scaling = %v, expected 1.0", got)
	}
}
