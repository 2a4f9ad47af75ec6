package enrzones

import (
	"regexp"
	"sort"

	"github.com/brunoga/deep"
)

// Config holds the static tables that describe one document family.
// It is plain data so it can be loaded from YAML and deep-copied.
type Config struct {
	// Sections maps a section number such as "5.1-1" to whether its
	// tables are parsed. Every section found in a document must be listed.
	Sections map[string]bool `yaml:"sections"`

	// SourceTypes maps header source-type codes to airspace types.
	SourceTypes map[string]SourceType `yaml:"source_types"`

	// SectionPattern extracts the section number from a heading as its
	// first capture group.
	SectionPattern string `yaml:"section_pattern"`

	// HeaderPattern matches the id attribute of airspace header rows.
	HeaderPattern string `yaml:"header_pattern"`

	// FootnotePattern matches duplicated footnote markers; see
	// NewFootnoteStripper.
	FootnotePattern string `yaml:"footnote_pattern"`

	// PointRadius is the radius of circles that replace single-point
	// geometries.
	PointRadius Distance `yaml:"point_radius"`

	// RemarksTitles label the timetable, restriction, and authority cells.
	RemarksTitles []string `yaml:"remarks_titles"`

	// AlwaysActive is the timetable text suppressed from remarks.
	AlwaysActive string `yaml:"always_active"`
}

// DefaultConfig returns the tables for ENR 5.1 of the EG (United Kingdom)
// eAIP.
func DefaultConfig() *Config {
	return &Config{
		Sections: map[string]bool{
			"5.1-1":   true,
			"5.1-2":   false,
			"5.1-3":   true,
			"5.1-4":   true,
			"5.1-5-1": false,
			"5.1-5-2": true,
		},
		SourceTypes: map[string]SourceType{
			"D":   {Type: "D"},
			"P":   {Type: "P"},
			"R":   {Type: "R"},
			"ZIT": {Type: "P", LocalType: "ZIT"},
		},
		SectionPattern:  `^ENR ([\d.-]+)`,
		HeaderPattern:   `TXT_NAME`,
		FootnotePattern: `\((\d+)\)\s*\((\d+)\)\W*`,
		PointRadius:     Distance{Value: 1, Unit: Kilometers},
		RemarksTitles:   []string{"TIMETABLE", "RESTRICTION", "AUTHORITY/CONDITIONS"},
		AlwaysActive:    "H24",
	}
}

// Validate returns an ECONFIG error if the configuration is unusable.
func (c *Config) Validate() error {
	if len(c.Sections) == 0 {
		return Errorf(ECONFIG, "at least one section is required")
	}
	if len(c.SourceTypes) == 0 {
		return Errorf(ECONFIG, "at least one source type is required")
	}
	for code, st := range c.SourceTypes {
		if st.Type == "" {
			return Errorf(ECONFIG, "source type %q has no airspace type", code)
		}
	}
	for name, pattern := range map[string]string{
		"section_pattern": c.SectionPattern,
		"header_pattern":  c.HeaderPattern,
	} {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Errorf(ECONFIG, "invalid %s: %v", name, err)
		}
		if name == "section_pattern" && re.NumSubexp() < 1 {
			return Errorf(ECONFIG, "section_pattern must capture the section number")
		}
	}
	if _, err := NewFootnoteStripper(c.FootnotePattern); err != nil {
		return err
	}
	if c.PointRadius.Value <= 0 {
		return Errorf(ECONFIG, "point_radius must be positive")
	}
	switch c.PointRadius.Unit {
	case Kilometers, NauticalMiles, Meters, Feet:
	default:
		return Errorf(ECONFIG, "point_radius unit %q unknown", c.PointRadius.Unit)
	}
	if len(c.RemarksTitles) < 3 {
		return Errorf(ECONFIG, "remarks_titles needs a title for each of the 3 remarks cells")
	}
	return nil
}

// Clone returns a deep copy so callers can hold an immutable snapshot.
func (c *Config) Clone() (*Config, error) {
	cp, err := deep.Copy(*c)
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

// SectionNumbers returns the configured section numbers in sorted order.
func (c *Config) SectionNumbers() []string {
	numbers := make([]string, 0, len(c.Sections))
	for n := range c.Sections {
		numbers = append(numbers, n)
	}
	sort.Strings(numbers)
	return numbers
}
