package config

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/spachava753/benchreg/internal/models"
	"github.com/spachava753/benchreg/internal/util"
)

// Settings is the optional benchreg settings file (settings.toml). It
// currently carries named constraint profiles and a default profile pick.
type Settings struct {
	DefaultConstraint string                        `toml:"default_constraint"`
	Constraints       map[string]*models.Constraint `toml:"constraint"`
}

// LoadSettings parses a settings.toml file. A constraint may give its
// memory budget as a human-readable quantity ("32G"); it is converted to
// MiB here unless max_mem_size_mb was set explicitly.
func LoadSettings(path string) (*Settings, error) {
	var s Settings
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}

	for name, c := range s.Constraints {
		c.Name = name
		if c.MaxMemSizeMB == nil && md.IsDefined("constraint", name, "max_mem_size") {
			mb, err := util.ParseMemSize(c.MaxMemSize)
			if err != nil {
				return nil, fmt.Errorf("constraint %s: parsing max_mem_size %q: %w", name, c.MaxMemSize, err)
			}
			c.MaxMemSizeMB = &mb
		}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		slog.Debug("settings file has unrecognized keys", "path", path, "keys", undecoded)
	}

	if s.DefaultConstraint != "" {
		if _, ok := s.Constraints[s.DefaultConstraint]; !ok {
			return nil, fmt.Errorf("default constraint %q is not defined", s.DefaultConstraint)
		}
	}
	return &s, nil
}

// Constraint returns the named profile, or the default profile when name
// is empty. Both empty means no constraint at all, reported as (nil, nil).
func (s *Settings) Constraint(name string) (*models.Constraint, error) {
	if name == "" {
		name = s.DefaultConstraint
	}
	if name == "" {
		return nil, nil
	}
	c, ok := s.Constraints[name]
	if !ok {
		return nil, fmt.Errorf("constraint %q not found, have: %v", name, s.constraintNames())
	}
	return c, nil
}

func (s *Settings) constraintNames() []string {
	names := make([]string, 0, len(s.Constraints))
	for name := range s.Constraints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
