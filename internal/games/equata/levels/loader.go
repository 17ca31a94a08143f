package levels

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrNotFound is returned when no level has the requested id.
var ErrNotFound = errors.New("level not found")

// Loader handles loading levels from a filesystem.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader over fsys. A nil logger discards messages.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{fsys: fsys, logger: logger}
}

// NewEmbeddedLoader creates a loader over the built-in levels.
func NewEmbeddedLoader(logger *log.Logger) *Loader {
	return NewLoader(Embedded(), logger)
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are logged and skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Definition, error) {
	var defs []Definition
	seen := make(map[string]Definition)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(path.Ext(p)) {
			return nil
		}

		def, err := l.LoadFile(p)
		if err != nil {
			l.logger.Warn("skipping level file", "path", p, "err", err)
			return nil
		}
		if err := Validate(def); err != nil {
			l.logger.Warn("skipping invalid level", "path", p, "err", err)
			return nil
		}
		if prev, dup := seen[def.ID]; dup {
			l.logger.Warn("skipping duplicate level id", "id", def.ID, "path", p, "first", prev.FilePath)
			return nil
		}
		seen[def.ID] = def

		defs = append(defs, def)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: cannot walk level files: %w", err)
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})

	l.logger.Debug("levels loaded", "count", len(defs))
	return defs, nil
}

// LoadFile loads a single level file by its path inside the loader's filesystem.
func (l *Loader) LoadFile(p string) (Definition, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Definition{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	def, err := ParseYAML(data)
	if err != nil {
		return Definition{}, fmt.Errorf("parsing file %s: %w", p, err)
	}
	def.FilePath = p
	return def, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Definition, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return Definition{}, err
	}

	for _, def := range defs {
		if def.ID == id {
			return def, nil
		}
	}

	return Definition{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	defs, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(defs))
	for i, def := range defs {
		ids[i] = def.ID
	}
	return ids, nil
}

// IndexOf returns the position of id in defs, or -1.
func IndexOf(defs []Definition, id string) int {
	for i, def := range defs {
		if def.ID == id {
			return i
		}
	}
	return -1
}

func isSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
