// Package levels provides the level catalog for Equata: YAML level files,
// the embedded default set, and validation.
// This package depends on level but level does not depend on levels.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/equata/internal/games/equata/level"
)

//go:embed data/*.yaml
var embedded embed.FS

// Embedded returns the built-in level files as a filesystem rooted at the data directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path, and "data" is a constant.
		panic(err)
	}
	return sub
}

// Definition is a level as described by a catalog file.
type Definition struct {
	ID           string
	Name         string
	Difficulty   string
	Tier         int
	Coefficients []float64
	MaxTime      float64
	Metadata     map[string]string
	FilePath     string
}

// yamlLevel is the on-disk structure of a level file.
type yamlLevel struct {
	ID           string            `yaml:"id"`
	Name         string            `yaml:"name"`
	Difficulty   string            `yaml:"difficulty,omitempty"`
	Tier         int               `yaml:"tier,omitempty"`
	Coefficients []float64         `yaml:"coefficients"`
	MaxTime      float64           `yaml:"max_time"`
	Metadata     map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a single level file.
func ParseYAML(data []byte) (Definition, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Definition{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Definition{
		ID:           yl.ID,
		Name:         name,
		Difficulty:   yl.Difficulty,
		Tier:         yl.Tier,
		Coefficients: yl.Coefficients,
		MaxTime:      yl.MaxTime,
		Metadata:     yl.Metadata,
	}, nil
}

// ReadFile parses a level file from the local filesystem.
func ReadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	def, err := ParseYAML(data)
	if err != nil {
		return Definition{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	def.FilePath = path
	return def, nil
}

// NewLevel builds a playable level. timeScale multiplies the time budget;
// values <= 0 leave it unchanged.
func (d Definition) NewLevel(timeScale float64) (*level.Level, error) {
	if timeScale <= 0 {
		timeScale = 1
	}
	return level.New(d.Coefficients, d.MaxTime*timeScale)
}

// Degree returns the degree of the level's polynomial.
func (d Definition) Degree() int {
	return len(d.Coefficients) - 1
}

// Label returns a short menu label such as "01  Level 1 Easy".
func (d Definition) Label() string {
	return fmt.Sprintf("%s  %s", d.ID, d.Name)
}

// Hint returns the hint shown while the level is played, if any.
func (d Definition) Hint() string {
	return d.Metadata["hint"]
}

// Group returns the menu heading for the level: its difficulty, capitalized,
// or "Levels" when the file has none.
func (d Definition) Group() string {
	if d.Difficulty == "" {
		return "Levels"
	}
	return strings.ToUpper(d.Difficulty[:1]) + d.Difficulty[1:]
}
