package mock

import (
	"github.com/fwojciec/enrzones"
)

var (
	_ enrzones.GeometryParser  = (*GeometryParser)(nil)
	_ enrzones.LayerParser     = (*LayerParser)(nil)
	_ enrzones.TimetableParser = (*TimetableParser)(nil)
)

// GeometryParser is a mock implementation of enrzones.GeometryParser.
type GeometryParser struct {
	ParseGeometryFn func(text string) (enrzones.Geometry, error)
}

func (p *GeometryParser) ParseGeometry(text string) (enrzones.Geometry, error) {
	return p.ParseGeometryFn(text)
}

// LayerParser is a mock implementation of enrzones.LayerParser.
type LayerParser struct {
	ParseLayerFn func(text string) (*enrzones.Layer, error)
}

func (p *LayerParser) ParseLayer(text string) (*enrzones.Layer, error) {
	return p.ParseLayerFn(text)
}

// TimetableParser is a mock implementation of enrzones.TimetableParser.
type TimetableParser struct {
	ParseTimetableFn func(text string) (*enrzones.Timetable, error)
}

func (p *TimetableParser) ParseTimetable(text string) (*enrzones.Timetable, error) {
	return p.ParseTimetableFn(text)
}
