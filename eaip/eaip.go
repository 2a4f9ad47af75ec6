// Package eaip parses the free-text notations of eAIP tables (boundary
// coordinates, vertical limits, and schedules) into enrzones values.
package eaip

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/enrzones"
)

// coordinatePattern matches a DMS pair such as "514200N 0013400W" or
// "5142N 00134W", with optional decimal seconds.
const coordinatePattern = `(\d{4,6}(?:\.\d+)?)\s*([NS])\s*(\d{5,7}(?:\.\d+)?)\s*([EW])`

var coordinateRe = regexp.MustCompile(coordinatePattern)

// ParseCoordinate parses the first DMS pair found in s.
func ParseCoordinate(s string) (enrzones.Coordinate, error) {
	m := coordinateRe.FindStringSubmatch(s)
	if m == nil {
		return enrzones.Coordinate{}, enrzones.Errorf(enrzones.EGEOMETRY, "no coordinate in %q", s)
	}
	lat, err := parseDMS(m[1], 2, 90)
	if err != nil {
		return enrzones.Coordinate{}, err
	}
	long, err := parseDMS(m[3], 3, 180)
	if err != nil {
		return enrzones.Coordinate{}, err
	}
	if m[2] == "S" {
		lat = -lat
	}
	if m[4] == "W" {
		long = -long
	}
	return enrzones.Coordinate{Lat: lat, Long: long}, nil
}

// parseDMS converts DDMMSS[.ss] (or DDMM) with degWidth degree digits.
func parseDMS(s string, degWidth int, limit float64) (float64, error) {
	whole, frac, _ := strings.Cut(s, ".")
	var deg, min, sec string
	switch len(whole) {
	case degWidth + 4:
		deg, min, sec = whole[:degWidth], whole[degWidth:degWidth+2], whole[degWidth+2:]
		if frac != "" {
			sec += "." + frac
		}
	case degWidth + 2:
		if frac != "" {
			return 0, enrzones.Errorf(enrzones.EGEOMETRY, "invalid coordinate %q", s)
		}
		deg, min, sec = whole[:degWidth], whole[degWidth:], "0"
	default:
		return 0, enrzones.Errorf(enrzones.EGEOMETRY, "invalid coordinate %q", s)
	}

	d, _ := strconv.ParseFloat(deg, 64)
	m, _ := strconv.ParseFloat(min, 64)
	sc, err := strconv.ParseFloat(sec, 64)
	if err != nil {
		return 0, enrzones.Errorf(enrzones.EGEOMETRY, "invalid coordinate %q", s)
	}
	if m >= 60 || sc >= 60 {
		return 0, enrzones.Errorf(enrzones.EGEOMETRY, "coordinate %q out of range", s)
	}
	v := d + m/60 + sc/3600
	if v > limit {
		return 0, enrzones.Errorf(enrzones.EGEOMETRY, "coordinate %q out of range", s)
	}
	return v, nil
}

// parseDistance reads a value and a unit such as "2 NM" or "0.5 km".
func parseDistance(value, unit string) (enrzones.Distance, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return enrzones.Distance{}, enrzones.Errorf(enrzones.EGEOMETRY, "invalid radius %q", value)
	}
	var u enrzones.DistanceUnit
	switch strings.ToUpper(unit) {
	case "NM":
		u = enrzones.NauticalMiles
	case "KM":
		u = enrzones.Kilometers
	case "M":
		u = enrzones.Meters
	case "FT":
		u = enrzones.Feet
	default:
		return enrzones.Distance{}, enrzones.Errorf(enrzones.EGEOMETRY, "unknown radius unit %q", unit)
	}
	return enrzones.Distance{Value: v, Unit: u}, nil
}
