package eaip

import (
	"strings"

	"github.com/fwojciec/enrzones"
)

// Ensure TimetableParser implements enrzones.TimetableParser at compile time.
var _ enrzones.TimetableParser = (*TimetableParser)(nil)

// TimetableParser reads operating hours. Whole-cell H codes (H24, HJ, HN,
// HX, HO) and NOTAM map to their codes; any other schedule is kept as
// free text under TimetableOther.
type TimetableParser struct{}

// NewTimetableParser creates a new TimetableParser.
func NewTimetableParser() *TimetableParser {
	return &TimetableParser{}
}

var timetableCodes = map[string]enrzones.TimetableCode{
	"H24":   enrzones.TimetableH24,
	"HJ":    enrzones.TimetableHJ,
	"HN":    enrzones.TimetableHN,
	"HX":    enrzones.TimetableHX,
	"HO":    enrzones.TimetableHO,
	"NOTAM": enrzones.TimetableNOTAM,
}

// ParseTimetable implements enrzones.TimetableParser.
func (p *TimetableParser) ParseTimetable(text string) (*enrzones.Timetable, error) {
	text = enrzones.CompactLines(text)
	if enrzones.StripNonWord(text) == "" {
		return nil, enrzones.Errorf(enrzones.ETIMETABLE, "timetable required")
	}
	if code, ok := timetableCodes[strings.ToUpper(enrzones.StripNonWord(text))]; ok {
		return &enrzones.Timetable{Code: code}, nil
	}
	return &enrzones.Timetable{Code: enrzones.TimetableOther, Remarks: text}, nil
}
