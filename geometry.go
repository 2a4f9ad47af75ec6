package enrzones

import (
	"fmt"
	"math"
)

// Coordinate is a WGS84 position in decimal degrees.
// Southern latitudes and western longitudes are negative.
type Coordinate struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// String returns the coordinate in DMS notation, e.g. 514200N 0013400W.
func (c Coordinate) String() string {
	return dms(c.Lat, 2, "N", "S") + " " + dms(c.Long, 3, "E", "W")
}

func dms(v float64, width int, pos, neg string) string {
	hemisphere := pos
	if v < 0 {
		hemisphere = neg
		v = -v
	}
	total := int(math.Round(v * 3600))
	return fmt.Sprintf("%0*d%02d%02d%s", width, total/3600, total%3600/60, total%60, hemisphere)
}

// DistanceUnit identifies the unit of a Distance.
type DistanceUnit string

// Supported distance units.
const (
	Kilometers    DistanceUnit = "km"
	NauticalMiles DistanceUnit = "nm"
	Meters        DistanceUnit = "m"
	Feet          DistanceUnit = "ft"
)

// Distance is a length with its unit as published.
type Distance struct {
	Value float64      `json:"value" yaml:"value"`
	Unit  DistanceUnit `json:"unit" yaml:"unit"`
}

// String returns e.g. "1 km" or "0.5 nm".
func (d Distance) String() string {
	return fmt.Sprintf("%g %s", d.Value, d.Unit)
}

// Meters converts the distance to meters.
func (d Distance) Meters() float64 {
	switch d.Unit {
	case Kilometers:
		return d.Value * 1000
	case NauticalMiles:
		return d.Value * 1852
	case Feet:
		return d.Value * 0.3048
	default:
		return d.Value
	}
}

// SegmentKind identifies how a Segment contributes to a boundary.
type SegmentKind string

// Segment kinds.
const (
	SegmentPoint  SegmentKind = "point"
	SegmentArc    SegmentKind = "arc"
	SegmentCircle SegmentKind = "circle"
)

// Segment is one element of a geometry boundary.
//
// A point segment is a vertex at Point. An arc segment starts at Point and
// runs around Center to the point of the following segment. A circle
// segment is a full circle around Center.
type Segment struct {
	Kind      SegmentKind `json:"kind"`
	Point     Coordinate  `json:"point"`
	Center    *Coordinate `json:"center,omitempty"`
	Radius    *Distance   `json:"radius,omitempty"`
	Clockwise bool        `json:"clockwise,omitempty"`
}

// Geometry is the horizontal boundary of an airspace.
type Geometry struct {
	Segments []Segment `json:"segments"`
}

// NewCircleGeometry returns a geometry made of a single circle.
func NewCircleGeometry(center Coordinate, radius Distance) Geometry {
	return Geometry{Segments: []Segment{{
		Kind:   SegmentCircle,
		Center: &center,
		Radius: &radius,
	}}}
}

// IsPoint reports whether the geometry degenerates to one point.
func (g Geometry) IsPoint() bool {
	return len(g.Segments) == 1 && g.Segments[0].Kind == SegmentPoint
}

// IsCircle reports whether the geometry is a single full circle.
func (g Geometry) IsCircle() bool {
	return len(g.Segments) == 1 && g.Segments[0].Kind == SegmentCircle
}

// IsPolygon reports whether the segments form a ring: at least three
// segments, no circles, ending on a point equal to the first point.
func (g Geometry) IsPolygon() bool {
	if len(g.Segments) < 3 {
		return false
	}
	for _, s := range g.Segments {
		if s.Kind == SegmentCircle {
			return false
		}
	}
	last := g.Segments[len(g.Segments)-1]
	return last.Kind == SegmentPoint && last.Point == g.Segments[0].Point
}

// IsClosed reports whether the geometry encloses an area.
func (g Geometry) IsClosed() bool {
	return g.IsCircle() || g.IsPolygon()
}

// FirstPoint returns the position of the first segment.
// For a circle this is its center.
func (g Geometry) FirstPoint() Coordinate {
	if len(g.Segments) == 0 {
		return Coordinate{}
	}
	if s := g.Segments[0]; s.Kind == SegmentCircle && s.Center != nil {
		return *s.Center
	}
	return g.Segments[0].Point
}
