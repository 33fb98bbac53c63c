package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"level-list/core/sections"
)

// Step operations.
const (
	OpData              = "data"
	OpHeader            = "header"
	OpBoth              = "both"
	OpPlaceholder       = "placeholder"
	OpPlaceholderHeader = "placeholder_header"
	OpPlaceholderBoth   = "placeholder_both"
	OpMerge             = "merge"
	OpRelease           = "release"
)

// ErrInvalidStep indicates a scenario step that cannot run.
var ErrInvalidStep = errors.New("invalid scenario step")

// Entry is one list item of a scenario.
type Entry struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Section registers a data type.
type Section struct {
	Type                    int `json:"type"`
	Level                   int `json:"level"`
	Layout                  int `json:"layout"`
	HeaderLayout            int `json:"header_layout"`
	PlaceholderLayout       int `json:"placeholder_layout"`
	PlaceholderHeaderLayout int `json:"placeholder_header_layout"`
}

// Step is one refresh request.
type Step struct {
	Op     string  `json:"op"`
	Type   int     `json:"type"`
	Level  int     `json:"level"`
	Mode   string  `json:"mode"`
	Count  int     `json:"count"`
	Items  []Entry `json:"items"`
	Header *Entry  `json:"header"`
	// Hold leaves the refresh pending until a release step, so following steps are dropped.
	Hold bool `json:"hold"`
}

// Scenario is a replayable sequence of refreshes.
type Scenario struct {
	// PreData are caller-owned items shown before level 0.
	PreData  []Entry   `json:"pre_data"`
	Sections []Section `json:"sections"`
	Steps    []Step    `json:"steps"`
}

// Load reads a scenario from a JSON file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	var sc Scenario
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario %s: %w", path, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks every step names a known operation and mode.
func (sc *Scenario) Validate() error {
	for i, st := range sc.Steps {
		switch st.Op {
		case OpData, OpHeader, OpBoth, OpPlaceholder, OpPlaceholderHeader, OpPlaceholderBoth, OpRelease:
		case OpMerge:
			if _, err := sections.ParseMode(st.Mode); err != nil {
				return fmt.Errorf("step %d: %w", i, err)
			}
		default:
			return fmt.Errorf("step %d: unknown op %q: %w", i, st.Op, ErrInvalidStep)
		}
	}
	return nil
}
