package eaip

import (
	"regexp"
	"strings"

	"github.com/fwojciec/enrzones"
)

var (
	// Boundary parts are separated by a dash with whitespace on at least
	// one side, which leaves "anti-clockwise" intact.
	partSeparatorRe = regexp.MustCompile(`\s+-\s*|\s*-\s+`)

	circleRe = regexp.MustCompile(`(?i)^a\s+circle,?\s+(?:of\s+)?([\d.]+)\s*(NM|KM|M|FT)\s+radius,?\s+cent(?:red|ered)\s+(?:on|at)\s+` + coordinatePattern)

	arcRe = regexp.MustCompile(`(?i)(?:thence\s+)?(anti-?clockwise|clockwise)\s+by\s+the\s+arc\s+of\s+a\s+circle,?\s+(?:of\s+)?(?:radius\s+)?([\d.]+)\s*(NM|KM|M|FT)\s*(?:radius\s*)?,?\s+cent(?:red|ered)\s+(?:on|at)\s+(` + coordinatePattern + `)(?:\s*\([^)]*\))?\s+to\s+(` + coordinatePattern + `)`)
)

// Ensure GeometryParser implements enrzones.GeometryParser at compile time.
var _ enrzones.GeometryParser = (*GeometryParser)(nil)

// GeometryParser reads boundary descriptions such as
//
//	514200N 0013400W - 514200N 0012000W - 513900N 0012000W - 514200N 0013400W
//	A circle, 2 NM radius, centred on 520000N 0010000W
//	... - thence clockwise by the arc of a circle radius 3 NM centred on <coord> to <coord> - ...
type GeometryParser struct{}

// NewGeometryParser creates a new GeometryParser.
func NewGeometryParser() *GeometryParser {
	return &GeometryParser{}
}

// ParseGeometry implements enrzones.GeometryParser.
func (p *GeometryParser) ParseGeometry(text string) (enrzones.Geometry, error) {
	text = strings.TrimRight(enrzones.Squish(text), ". ")
	if text == "" {
		return enrzones.Geometry{}, enrzones.Errorf(enrzones.EGEOMETRY, "empty geometry")
	}

	if m := circleRe.FindStringSubmatch(text); m != nil {
		radius, err := parseDistance(m[1], m[2])
		if err != nil {
			return enrzones.Geometry{}, err
		}
		center, err := ParseCoordinate(strings.Join(m[3:7], ""))
		if err != nil {
			return enrzones.Geometry{}, err
		}
		return enrzones.NewCircleGeometry(center, radius), nil
	}

	var g enrzones.Geometry
	for _, part := range partSeparatorRe.Split(text, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if err := p.parsePart(&g, part); err != nil {
			return enrzones.Geometry{}, err
		}
	}
	return g, nil
}

// parsePart appends the segments described by one dash-separated part:
// a point, an arc, or a point immediately followed by an arc.
func (p *GeometryParser) parsePart(g *enrzones.Geometry, part string) error {
	loc := arcRe.FindStringSubmatchIndex(part)
	if loc == nil {
		if n := len(coordinateRe.FindAllStringIndex(part, -1)); n != 1 {
			return enrzones.Errorf(enrzones.EGEOMETRY, "cannot read boundary part %q", part)
		}
		pt, err := ParseCoordinate(part)
		if err != nil {
			return err
		}
		g.Segments = append(g.Segments, enrzones.Segment{Kind: enrzones.SegmentPoint, Point: pt})
		return nil
	}

	if before := part[:loc[0]]; coordinateRe.MatchString(before) {
		pt, err := ParseCoordinate(before)
		if err != nil {
			return err
		}
		g.Segments = append(g.Segments, enrzones.Segment{Kind: enrzones.SegmentPoint, Point: pt})
	}

	group := func(i int) string { return part[loc[2*i]:loc[2*i+1]] }
	if len(g.Segments) == 0 || g.Segments[len(g.Segments)-1].Kind != enrzones.SegmentPoint {
		return enrzones.Errorf(enrzones.EGEOMETRY, "arc without start point in %q", part)
	}
	radius, err := parseDistance(group(2), group(3))
	if err != nil {
		return err
	}
	center, err := ParseCoordinate(group(4))
	if err != nil {
		return err
	}
	end, err := ParseCoordinate(group(9))
	if err != nil {
		return err
	}

	start := &g.Segments[len(g.Segments)-1]
	start.Kind = enrzones.SegmentArc
	start.Center = &center
	start.Radius = &radius
	start.Clockwise = !strings.HasPrefix(strings.ToLower(group(1)), "anti")
	g.Segments = append(g.Segments, enrzones.Segment{Kind: enrzones.SegmentPoint, Point: end})
	return nil
}
