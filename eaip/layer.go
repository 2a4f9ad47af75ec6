package eaip

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/enrzones"
)

var (
	limitSeparatorRe = regexp.MustCompile(`\n|/`)
	flightLevelRe    = regexp.MustCompile(`(?i)^FL\s*(\d{1,3})$`)
	feetRe           = regexp.MustCompile(`(?i)^(\d[\d,]*)\s*(?:FT|FEET|')\s*(ALT|AMSL|MSL|AGL|AAL|SFC|GND)?$`)
)

// Ensure LayerParser implements enrzones.LayerParser at compile time.
var _ enrzones.LayerParser = (*LayerParser)(nil)

// LayerParser reads vertical limits written as the upper limit above the
// lower limit, separated by a line break or a slash:
//
//	FL 245
//	SFC
type LayerParser struct{}

// NewLayerParser creates a new LayerParser.
func NewLayerParser() *LayerParser {
	return &LayerParser{}
}

// ParseLayer implements enrzones.LayerParser.
func (p *LayerParser) ParseLayer(text string) (*enrzones.Layer, error) {
	var limits []string
	for _, part := range limitSeparatorRe.Split(enrzones.Cleanup(text), -1) {
		if part = enrzones.Squish(part); enrzones.StripNonWord(part) != "" {
			limits = append(limits, part)
		}
	}
	if len(limits) != 2 {
		return nil, enrzones.Errorf(enrzones.EINVALID, "expected upper and lower limit in %q", enrzones.Squish(text))
	}

	upper, err := ParseAltitude(limits[0])
	if err != nil {
		return nil, err
	}
	lower, err := ParseAltitude(limits[1])
	if err != nil {
		return nil, err
	}
	if lower.Unlimited {
		return nil, enrzones.Errorf(enrzones.EINVALID, "lower limit cannot be unlimited")
	}

	return &enrzones.Layer{
		VerticalLimits: enrzones.VerticalLimits{Upper: upper, Lower: lower},
	}, nil
}

// ParseAltitude reads a single limit such as "FL 245", "2000 ft ALT",
// "1500 ft AGL", "SFC", or "UNL".
func ParseAltitude(s string) (enrzones.Altitude, error) {
	s = strings.TrimRight(enrzones.Squish(s), ".")
	switch strings.ToUpper(s) {
	case "UNL", "UNLIMITED":
		return enrzones.Altitude{Unlimited: true}, nil
	case "SFC", "GND", "SURFACE", "GROUND":
		return enrzones.Altitude{Code: enrzones.QFE}, nil
	}

	if m := flightLevelRe.FindStringSubmatch(s); m != nil {
		v, _ := strconv.Atoi(m[1])
		return enrzones.Altitude{Value: v, Code: enrzones.QNE}, nil
	}

	if m := feetRe.FindStringSubmatch(s); m != nil {
		v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			return enrzones.Altitude{}, enrzones.Errorf(enrzones.EINVALID, "invalid altitude %q", s)
		}
		code := enrzones.QNH
		switch strings.ToUpper(m[2]) {
		case "AGL", "AAL", "SFC", "GND":
			code = enrzones.QFE
		}
		return enrzones.Altitude{Value: v, Code: code}, nil
	}

	return enrzones.Altitude{}, enrzones.Errorf(enrzones.EINVALID, "invalid altitude %q", s)
}
