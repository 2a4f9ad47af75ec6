package enr

import (
	"strings"

	"github.com/fwojciec/enrzones"
)

// rowKind is the closed set of row shapes found in an ENR 5.1 table body.
type rowKind int

const (
	headerRow rowKind = iota + 1
	commentRow
	dataRow
)

func (k rowKind) String() string {
	switch k {
	case headerRow:
		return "header"
	case commentRow:
		return "comment"
	case dataRow:
		return "data"
	}
	return "unknown"
}

// row is one classified table row.
type row struct {
	kind  rowKind
	index int // 1-based within the table body
	el    enrzones.Element
	cells []enrzones.Element
}

// table carries what every row of one table body shares.
type table struct {
	doc     *enrzones.Document
	section string
	out     *enrzones.AirspaceSet
}

// cursor is the airspace subsequent rows attach to. Nil until the first
// header row of the table body succeeds.
type cursor struct {
	airspace *enrzones.Airspace
}

// outcome is the result of handling one row.
type outcome struct {
	next cursor
	err  error
}

// classify inspects a row without interpreting its content.
func (x *Extractor) classify(el enrzones.Element, index int) row {
	r := row{index: index, el: el, cells: el.FindAll(cellTag)}
	id, _ := el.Attr("id")
	switch {
	case x.header.MatchString(id):
		r.kind = headerRow
	case len(r.cells) == 1:
		r.kind = commentRow
	default:
		r.kind = dataRow
	}
	return r
}

// extractTable walks the rows of one table body and returns a warning
// for every row that could not be used.
func (x *Extractor) extractTable(t *table, body enrzones.Element) []enrzones.Warning {
	var (
		warnings []enrzones.Warning
		cur      cursor
	)
	for i, el := range body.FindAll(rowTag) {
		r := x.classify(el, i+1)
		o := x.handleRow(t, cur, r)
		if o.err != nil {
			w := x.warning(t, cur, r, o.err)
			x.logger.Warn("error parsing airspace",
				"section", w.Section,
				"airspace", w.Airspace,
				"row", w.Row,
				"kind", r.kind.String(),
				"error", w.Message,
			)
			warnings = append(warnings, w)
		}
		cur = o.next
	}
	return warnings
}

// handleRow dispatches on the row kind. A panic in a collaborator is
// confined to the row it happened on.
func (x *Extractor) handleRow(t *table, cur cursor, r row) (o outcome) {
	defer func() {
		if p := recover(); p != nil {
			o = outcome{next: cur, err: enrzones.Errorf(enrzones.EINTERNAL, "%v", p)}
		}
	}()

	switch r.kind {
	case headerRow:
		a, err := x.headerAirspace(t, r)
		if err != nil {
			// Rows below a broken header must not attach to the previous airspace.
			return outcome{err: err}
		}
		return outcome{next: cursor{airspace: a}}
	case commentRow:
		return outcome{next: cur, err: x.appendComment(cur, r)}
	default:
		next, err := x.dataAirspace(t, cur, r)
		if err != nil {
			return outcome{next: cur, err: err}
		}
		return outcome{next: cursor{airspace: next}}
	}
}

// headerAirspace builds the identity of a new airspace from a header row
// such as "EG D 123" ... "DANGER AREA ALPHA".
func (x *Extractor) headerAirspace(t *table, r row) (*enrzones.Airspace, error) {
	if len(r.cells) == 0 {
		return nil, enrzones.Errorf(enrzones.EINVALID, "header row has no cells")
	}
	fields := strings.Fields(enrzones.Squish(r.cells[0].Text()))
	if len(fields) < 3 {
		return nil, enrzones.Errorf(enrzones.EINVALID, "malformed airspace designator %q", strings.Join(fields, " "))
	}
	region, code := fields[0], fields[1]
	localID := enrzones.StripNonWord(strings.Join(fields[2:], " "))
	st, ok := x.config.SourceTypes[code]
	if !ok {
		return nil, enrzones.Errorf(enrzones.EINVALID, "unknown type `%s'", code)
	}
	name := enrzones.Squish(r.cells[len(r.cells)-1].Text())

	a := enrzones.NewAirspace(region, code, localID, name, st)
	a.Source = enrzones.Source{
		Document: t.doc.Name,
		Digest:   t.doc.Digest,
		Section:  t.section,
		Position: r.el.Position(),
	}
	return a, nil
}

// appendComment adds the text of a full-width comment row to the remarks
// of the current airspace's first layer.
func (x *Extractor) appendComment(cur cursor, r row) error {
	if cur.airspace == nil {
		return enrzones.Errorf(enrzones.EINTERNAL, "comment row without airspace")
	}
	if len(cur.airspace.Layers) == 0 {
		return enrzones.Errorf(enrzones.EINTERNAL, "comment row before any layer")
	}
	l := cur.airspace.Layers[0]
	l.AppendRemarks(enrzones.CompactLines(r.cells[0].Text()))
	l.Remarks = strings.TrimSpace(x.footnotes.Strip(l.Remarks))
	return nil
}

// dataAirspace assembles a candidate from the current airspace's identity
// and the row's geometry, limits, timetable, and remarks. It returns the
// airspace later rows attach to: the candidate if it was added, or the
// member it duplicates.
func (x *Extractor) dataAirspace(t *table, cur cursor, r row) (*enrzones.Airspace, error) {
	if cur.airspace == nil {
		return nil, enrzones.Errorf(enrzones.EINTERNAL, "data row without airspace")
	}
	if len(r.cells) < 3 {
		return nil, enrzones.Errorf(enrzones.EINVALID, "expected at least 3 cells, got %d", len(r.cells))
	}

	a := cur.airspace.Header()

	g, err := x.geometries.ParseGeometry(r.cells[0].Text())
	if err != nil {
		return nil, err
	}
	if g.IsPoint() {
		g = enrzones.NewCircleGeometry(g.FirstPoint(), x.config.PointRadius)
	}
	a.Geometry = g

	l, err := x.layers.ParseLayer(r.cells[1].Text())
	if err != nil {
		return nil, err
	}
	if err := a.AddLayer(l); err != nil {
		return nil, err
	}

	tt, err := x.timetables.ParseTimetable(r.cells[2].Text())
	if err != nil {
		return nil, err
	}
	a.Layers[0].Timetable = tt

	remarks, err := x.remarks.Aggregate(cellTexts(r.cells, 2, len(x.config.RemarksTitles))...)
	if err != nil {
		return nil, err
	}
	a.Layers[0].Remarks = remarks

	if err := a.Validate(); err != nil {
		return nil, err
	}
	if !t.out.Add(a) {
		x.logger.Debug("duplicate airspace dropped", "airspace", a.Name, "id", a.ID, "row", r.index)
		return t.out.Find(a.Key()), nil
	}
	return a, nil
}

// warning describes a failed row.
func (x *Extractor) warning(t *table, cur cursor, r row, err error) enrzones.Warning {
	w := enrzones.Warning{
		Section: t.section,
		Row:     r.index,
		Code:    enrzones.ErrorCode(err),
		Message: enrzones.ErrorMessage(err),
	}
	if w.Code == enrzones.EINTERNAL && w.Message == "Internal error" {
		w.Message = err.Error()
	}
	if cur.airspace != nil && r.kind != headerRow {
		w.Airspace = cur.airspace.Name
	}
	return w
}

// cellTexts returns the text of n cells starting at from; missing cells
// read as empty.
func cellTexts(cells []enrzones.Element, from, n int) []string {
	texts := make([]string, n)
	for i := range texts {
		if j := from + i; j < len(cells) {
			texts[i] = cells[j].Text()
		}
	}
	return texts
}
