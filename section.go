package enrzones

import (
	"regexp"
	"strings"
)

// Section is a numbered chapter heading that switches table parsing on
// or off until the next heading.
type Section struct {
	Number string `json:"number"`
	Parse  bool   `json:"parse"`
}

// SectionIndex resolves section headings against the configured table
// of parse flags.
type SectionIndex struct {
	re    *regexp.Regexp
	flags map[string]bool
}

// NewSectionIndex compiles pattern, whose first capture group yields the
// section number, and pairs it with the parse flags.
func NewSectionIndex(pattern string, flags map[string]bool) (*SectionIndex, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, Errorf(ECONFIG, "invalid section pattern: %v", err)
	}
	if re.NumSubexp() < 1 {
		return nil, Errorf(ECONFIG, "section pattern must capture the section number")
	}
	return &SectionIndex{re: re, flags: flags}, nil
}

// Lookup parses a heading such as "ENR 5.1-1 PROHIBITED AREAS" and
// returns its section. Headings that do not match the pattern and
// section numbers missing from the table fail with ECONFIG: the document
// has drifted beyond what the configuration anticipates.
func (x *SectionIndex) Lookup(heading string) (Section, error) {
	heading = Squish(heading)
	m := x.re.FindStringSubmatch(heading)
	if m == nil {
		return Section{}, Errorf(ECONFIG, "unrecognized section heading %q", heading)
	}
	number := strings.TrimRight(m[1], ".-")
	parse, ok := x.flags[number]
	if !ok {
		return Section{}, Errorf(ECONFIG, "section %s is not configured", number)
	}
	return Section{Number: number, Parse: parse}, nil
}
