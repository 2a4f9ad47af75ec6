package enrzones

import (
	"fmt"
	"strings"
)

// AltitudeCode is the reference an altitude is measured against.
type AltitudeCode string

// Altitude references.
const (
	QNH AltitudeCode = "QNH" // above mean sea level
	QFE AltitudeCode = "QFE" // above ground
	QNE AltitudeCode = "QNE" // flight level
)

// Altitude is one vertical limit.
type Altitude struct {
	Value     int          `json:"value"`
	Code      AltitudeCode `json:"code,omitempty"`
	Unlimited bool         `json:"unlimited,omitempty"`
}

// IsGround reports whether the altitude is the surface.
func (a Altitude) IsGround() bool {
	return !a.Unlimited && a.Code == QFE && a.Value == 0
}

// String returns the altitude in publication notation.
func (a Altitude) String() string {
	switch {
	case a.Unlimited:
		return "UNL"
	case a.IsGround():
		return "GND"
	case a.Code == QNE:
		return fmt.Sprintf("FL%d", a.Value)
	default:
		return fmt.Sprintf("%d ft %s", a.Value, a.Code)
	}
}

// VerticalLimits bound a layer from below and above.
type VerticalLimits struct {
	Upper Altitude `json:"upper"`
	Lower Altitude `json:"lower"`
}

// String returns e.g. "FL245/GND".
func (v VerticalLimits) String() string {
	return v.Upper.String() + "/" + v.Lower.String()
}

// TimetableCode classifies when a layer is active.
type TimetableCode string

// Timetable codes.
const (
	TimetableH24   TimetableCode = "H24"   // continuous
	TimetableHJ    TimetableCode = "HJ"    // sunrise to sunset
	TimetableHN    TimetableCode = "HN"    // sunset to sunrise
	TimetableHX    TimetableCode = "HX"    // no specific hours
	TimetableHO    TimetableCode = "HO"    // by operational requirements
	TimetableNOTAM TimetableCode = "NOTAM" // as published by NOTAM
	TimetableOther TimetableCode = "OTHER" // see Remarks
)

// Timetable describes the operating hours of a layer.
type Timetable struct {
	Code    TimetableCode `json:"code"`
	Remarks string        `json:"remarks,omitempty"`
}

// Layer is one vertical and temporal slice of an airspace.
type Layer struct {
	VerticalLimits VerticalLimits `json:"verticalLimits"`
	Timetable      *Timetable     `json:"timetable,omitempty"`

	// Remarks is merged free text; empty means absent.
	Remarks string `json:"remarks,omitempty"`
}

// AppendRemarks adds text on a new line below the existing remarks.
func (l *Layer) AppendRemarks(text string) {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
	case l.Remarks == "":
		l.Remarks = text
	default:
		l.Remarks += "\n" + text
	}
}
