package feed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"level-list/core/sections"
)

// Source kinds.
const (
	SourceDB      = "db"
	SourceStorage = "storage"
)

var (
	// ErrUnknownSource indicates a source kind other than db or storage.
	ErrUnknownSource = errors.New("unknown feed source")

	// ErrInvalidSections indicates a malformed sections setting.
	ErrInvalidSections = errors.New("invalid sections setting")
)

// Config holds configuration for the feed feature.
type Config struct {
	// Source selects where section content is loaded from (db, storage).
	Source string `mapstructure:"source" default:"db"`
	// Prefix is the object prefix of section documents in the storage source.
	Prefix string `mapstructure:"prefix" default:"sections"`
	// Sections lists the feed sections as comma separated type:level pairs.
	Sections string `mapstructure:"sections" default:"1:0,2:1,3:2"`
	// QueueSize is the number of refreshes that may wait for the engine.
	QueueSize int `mapstructure:"queue_size" default:"64"`
	// LoadTimeoutSeconds bounds a single source load.
	LoadTimeoutSeconds int `mapstructure:"load_timeout_seconds" default:"10"`
}

// LoadTimeout returns the source load bound, 10s when unset.
func (c Config) LoadTimeout() time.Duration {
	if c.LoadTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.LoadTimeoutSeconds) * time.Second
}

// Section is one configured feed section.
type Section struct {
	// Type is the data type of the section.
	Type int
	// Level orders the section within the feed.
	Level int
}

// Layouts returns the layouts of the section's data, header, placeholder and placeholder header
// views. Each section owns the ten layout ids starting at Type*10.
func (s Section) Layouts() (data, header, placeholder, placeholderHeader sections.LayoutID) {
	base := sections.LayoutID(s.Type * 10)
	return base, base + 1, base + 2, base + 3
}

// ParseSections parses a comma separated list of type:level pairs.
func ParseSections(raw string) ([]Section, error) {
	var out []Section
	seen := make(map[int]struct{})
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		typ, level, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("%q: %w", part, ErrInvalidSections)
		}
		t, err := strconv.Atoi(strings.TrimSpace(typ))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, ErrInvalidSections)
		}
		l, err := strconv.Atoi(strings.TrimSpace(level))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", part, ErrInvalidSections)
		}
		if _, dup := seen[t]; dup {
			return nil, fmt.Errorf("type %d listed twice: %w", t, ErrInvalidSections)
		}
		seen[t] = struct{}{}
		out = append(out, Section{Type: t, Level: l})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sections: %w", ErrInvalidSections)
	}
	return out, nil
}
