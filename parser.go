package enrzones

// GeometryParser turns boundary text into a geometry.
type GeometryParser interface {
	// ParseGeometry returns EGEOMETRY on malformed coordinate text.
	ParseGeometry(text string) (Geometry, error)
}

// LayerParser turns vertical limits text into a layer.
type LayerParser interface {
	// ParseLayer returns EINVALID on unreadable limits.
	ParseLayer(text string) (*Layer, error)
}

// TimetableParser turns schedule text into a timetable.
type TimetableParser interface {
	// ParseTimetable returns ETIMETABLE when no timetable can be read.
	ParseTimetable(text string) (*Timetable, error)
}
