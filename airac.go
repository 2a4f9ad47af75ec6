package enrzones

import (
	"fmt"
	"time"
)

// airacReference is the effective date of AIRAC cycle 1801.
var airacReference = time.Date(2018, 1, 4, 0, 0, 0, 0, time.UTC)

const airacDays = 28

// AIRAC is an aeronautical information regulation and control cycle.
// Publications change only on cycle effective dates, every 28 days.
type AIRAC struct {
	Date time.Time
}

// NewAIRAC returns the cycle in effect on t.
func NewAIRAC(t time.Time) AIRAC {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := int(day.Sub(airacReference).Hours() / 24)
	cycles := days / airacDays
	if days%airacDays < 0 {
		cycles--
	}
	return AIRAC{Date: airacReference.AddDate(0, 0, cycles*airacDays)}
}

// ParseAIRAC parses a YYYY-MM-DD date and returns the cycle in effect.
func ParseAIRAC(s string) (AIRAC, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return AIRAC{}, Errorf(EINVALID, "invalid AIRAC date %q", s)
	}
	return NewAIRAC(t), nil
}

// ID returns the cycle identifier YYNN, e.g. "2401".
func (a AIRAC) ID() string {
	n := 1
	for d := a.Date.AddDate(0, 0, -airacDays); d.Year() == a.Date.Year(); d = d.AddDate(0, 0, -airacDays) {
		n++
	}
	return fmt.Sprintf("%02d%02d", a.Date.Year()%100, n)
}

// Next returns the following cycle.
func (a AIRAC) Next() AIRAC {
	return AIRAC{Date: a.Date.AddDate(0, 0, airacDays)}
}

// Previous returns the preceding cycle.
func (a AIRAC) Previous() AIRAC {
	return AIRAC{Date: a.Date.AddDate(0, 0, -airacDays)}
}

// String returns the effective date as YYYY-MM-DD.
func (a AIRAC) String() string {
	return a.Date.Format(time.DateOnly)
}
