// Package config provides YAML-based configuration loading and
// difficulty management for Equata.
package config

// Config contains all tunable settings for the game.
type Config struct {
	Sampling   SamplingConfig   `yaml:"sampling"`
	Controls   ControlsConfig   `yaml:"controls"`
	Timing     TimingConfig     `yaml:"timing"`
	Endless    EndlessConfig    `yaml:"endless"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SamplingConfig sets how densely the two paths are sampled for the plot.
type SamplingConfig struct {
	EnemySpacing  float64 `yaml:"enemy_spacing"`
	PlayerSpacing float64 `yaml:"player_spacing"`
}

// ControlsConfig sets the coefficient editor steps.
type ControlsConfig struct {
	CoarseStep float64 `yaml:"coarse_step"`
	FineStep   float64 `yaml:"fine_step"`
	CoefLimit  float64 `yaml:"coef_limit"`
}

// TimingConfig holds host-side pacing.
type TimingConfig struct {
	ClearDelay float64 `yaml:"clear_delay"` // Seconds before a cleared level auto-advances
}

// EndlessConfig shapes randomly generated levels.
type EndlessConfig struct {
	BaseTime    float64 `yaml:"base_time"`
	TimePerTerm float64 `yaml:"time_per_term"`
	MinDegree   int     `yaml:"min_degree"`
	MaxDegree   int     `yaml:"max_degree"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "levels", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Cleared levels or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeScale float64 `yaml:"time_scale"` // Multiplier applied to level time budgets
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	}
	return "", false
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// TimeScaleForPreset returns the time budget multiplier for a preset.
func TimeScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.5
	case DifficultyHard:
		return 0.75
	default:
		return 1.0
	}
}

// DefaultConfig returns the hardcoded configuration used when no YAML can be read.
func DefaultConfig() Config {
	return Config{
		Sampling: SamplingConfig{
			EnemySpacing:  0.01,
			PlayerSpacing: 0.025,
		},
		Controls: ControlsConfig{
			CoarseStep: 1.0,
			FineStep:   0.1,
			CoefLimit:  99,
		},
		Timing: TimingConfig{
			ClearDelay: 3.0,
		},
		Endless: EndlessConfig{
			BaseTime:    60,
			TimePerTerm: 20,
			MinDegree:   2,
			MaxDegree:   4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "levels",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				TimeScale: 1.0,
			},
		},
	}
}

// Normalize replaces missing or out-of-range values with defaults so a
// partial YAML file still yields a playable configuration.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if !(c.Sampling.EnemySpacing > 0) {
		c.Sampling.EnemySpacing = def.Sampling.EnemySpacing
	}
	if !(c.Sampling.PlayerSpacing > 0) {
		c.Sampling.PlayerSpacing = def.Sampling.PlayerSpacing
	}
	if !(c.Controls.CoarseStep > 0) {
		c.Controls.CoarseStep = def.Controls.CoarseStep
	}
	if !(c.Controls.FineStep > 0) {
		c.Controls.FineStep = def.Controls.FineStep
	}
	if !(c.Controls.CoefLimit > 0) {
		c.Controls.CoefLimit = def.Controls.CoefLimit
	}
	if c.Timing.ClearDelay < 0 {
		c.Timing.ClearDelay = def.Timing.ClearDelay
	}
	if !(c.Endless.BaseTime > 0) {
		c.Endless.BaseTime = def.Endless.BaseTime
	}
	if c.Endless.TimePerTerm < 0 {
		c.Endless.TimePerTerm = def.Endless.TimePerTerm
	}
	c.Endless.MinDegree = min(max(c.Endless.MinDegree, 2), 4)
	c.Endless.MaxDegree = min(max(c.Endless.MaxDegree, c.Endless.MinDegree), 4)
	if c.Difficulty.Progression.Type == "" {
		c.Difficulty.Progression.Type = def.Difficulty.Progression.Type
	}
	if !(c.Difficulty.Scaling.TimeScale > 0) {
		c.Difficulty.Scaling.TimeScale = def.Difficulty.Scaling.TimeScale
	}
	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0, 1)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
	cfg.Difficulty.Scaling.TimeScale = TimeScaleForPreset(preset)
}
