package enr_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/enrzones"
	"github.com/fwojciec/enrzones/enr"
	"github.com/fwojciec/enrzones/goquery"
	"github.com/fwojciec/enrzones/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	square   = "514200N 0013400W - 514200N 0012000W - 513900N 0012000W - 514200N 0013400W"
	unclosed = "514200N 0013400W - 514200N 0012000W - 513900N 0012000W"
	point    = "520000N 0010000W"
)

func page(parts ...string) string {
	return "<html>\n<body>\n" + strings.Join(parts, "\n") + "\n</body>\n</html>"
}

func heading(text string) string {
	return "<h4>" + text + "</h4>"
}

func table(rows ...string) string {
	return "<table>\n<thead><tr><th>Identification</th><th>Lateral limits</th></tr></thead>\n<tbody>\n" +
		strings.Join(rows, "\n") + "\n</tbody>\n</table>"
}

func header(designator, name string) string {
	return fmt.Sprintf(`<tr id="ID-TXT_NAME"><td>%s</td><td>%s</td></tr>`, designator, name)
}

func data(cells ...string) string {
	return "<tr><td>" + strings.Join(cells, "</td><td>") + "</td></tr>"
}

func comment(text string) string {
	return `<tr><td colspan="5">` + text + "</td></tr>"
}

func extract(t *testing.T, html string, opts ...enr.Option) *enrzones.Result {
	t.Helper()

	x, err := enr.NewExtractor(enrzones.DefaultConfig(), opts...)
	require.NoError(t, err)

	m, err := goquery.NewParser().Parse(strings.NewReader(html))
	require.NoError(t, err)

	result, err := x.Extract(context.Background(), &enrzones.Document{
		Name:   "EG-ENR-5.1",
		Digest: enrzones.HashContent([]byte(html)),
		Markup: m,
	})
	require.NoError(t, err)
	return result
}

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts an airspace from header and data rows", func(t *testing.T) {
		t.Parallel()

		html := page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 123", "Danger Area Alpha"),
				data(square, "FL 245<br/>SFC", "H24", "", ""),
			),
		)

		result := extract(t, html)

		assert.Empty(t, result.Warnings)
		require.Len(t, result.Airspaces, 1)
		a := result.Airspaces[0]
		assert.Equal(t, "EG-D123 Danger Area Alpha", a.Name)
		assert.Equal(t, "D", a.Type)
		assert.Empty(t, a.LocalType)
		assert.Equal(t, "123", a.LocalID)
		assert.Len(t, a.ID, 8)
		assert.True(t, a.Geometry.IsPolygon())
		require.Len(t, a.Layers, 1)
		assert.Equal(t, "FL245/GND", a.Layers[0].VerticalLimits.String())
		require.NotNil(t, a.Layers[0].Timetable)
		assert.Equal(t, enrzones.TimetableH24, a.Layers[0].Timetable.Code)
		assert.Empty(t, a.Layers[0].Remarks)
		assert.NoError(t, a.Validate())

		assert.Equal(t, "EG-ENR-5.1", a.Source.Document)
		assert.Equal(t, enrzones.HashContent([]byte(html)), a.Source.Digest)
		assert.Equal(t, "5.1-4", a.Source.Section)
		assert.Regexp(t, `^line \d+$`, a.Source.Position)

		assert.Equal(t, []enrzones.Section{{Number: "5.1-4", Parse: true}}, result.Sections)
	})

	t.Run("maps source types to type and local type", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-1 PROHIBITED AREAS"),
			table(
				header("EG ZIT 1", "Zone of Intense Activity"),
				data(square, "2000 ft ALT<br/>SFC", "H24", "", ""),
			),
		))

		require.Len(t, result.Airspaces, 1)
		assert.Equal(t, "P", result.Airspaces[0].Type)
		assert.Equal(t, "ZIT", result.Airspaces[0].LocalType)
		assert.Equal(t, "EG-ZIT1 Zone of Intense Activity", result.Airspaces[0].Name)
	})

	t.Run("skips tables of disabled sections", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-2 RESTRICTED AREAS"),
			table(
				header("EG R 1", "Skipped"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
			heading("ENR 5.1-3 RESTRICTED AREAS"),
			table(
				header("EG R 2", "Parsed"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
		))

		require.Len(t, result.Airspaces, 1)
		assert.Equal(t, "EG-R2 Parsed", result.Airspaces[0].Name)
		assert.Equal(t, []enrzones.Section{
			{Number: "5.1-2", Parse: false},
			{Number: "5.1-3", Parse: true},
		}, result.Sections)
	})

	t.Run("isolates failing rows", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 1", "Broken"),
				data("somewhere over the rainbow", "FL 100<br/>SFC", "H24", "", ""),
				header("EG D 2", "Fine"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
		))

		require.Len(t, result.Airspaces, 1)
		assert.Equal(t, "EG-D2 Fine", result.Airspaces[0].Name)
		require.Len(t, result.Warnings, 1)
		w := result.Warnings[0]
		assert.Equal(t, 2, w.Row)
		assert.Equal(t, "5.1-4", w.Section)
		assert.Equal(t, "EG-D1 Broken", w.Airspace)
		assert.Equal(t, enrzones.EGEOMETRY, w.Code)
		assert.Contains(t, w.String(), "error parsing airspace `EG-D1 Broken' at #2:")
	})

	t.Run("promotes a single point to a circle", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 7", "Mast"),
				data(point, "1500 ft AGL<br/>SFC", "H24", "", ""),
			),
		))

		require.Len(t, result.Airspaces, 1)
		g := result.Airspaces[0].Geometry
		require.True(t, g.IsCircle())
		assert.Equal(t, enrzones.Coordinate{Lat: 52, Long: -1}, g.FirstPoint())
		require.NotNil(t, g.Segments[0].Radius)
		assert.Equal(t, enrzones.Distance{Value: 1, Unit: enrzones.Kilometers}, *g.Segments[0].Radius)
	})

	t.Run("rejects unclosed geometry", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 8", "Open"),
				data(unclosed, "FL 100<br/>SFC", "H24", "", ""),
			),
		))

		assert.Empty(t, result.Airspaces)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, enrzones.EINVALID, result.Warnings[0].Code)
		assert.Equal(t, "geometry is not closed", result.Warnings[0].Message)
	})

	t.Run("aggregates remarks from timetable, restriction, and authority", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 9", "Range"),
				data(square, "FL 100<br/>SFC", "Mon-Fri 0800-1700", "Firing", "Range Control"),
			),
		))

		require.Len(t, result.Airspaces, 1)
		l := result.Airspaces[0].Layers[0]
		assert.Equal(t, enrzones.TimetableOther, l.Timetable.Code)
		assert.Equal(t, "Mon-Fri 0800-1700", l.Timetable.Remarks)
		assert.Equal(t, "**TIMETABLE**\nMon-Fri 0800-1700\n\n**RESTRICTION**\nFiring\n\n**AUTHORITY/CONDITIONS**\nRange Control", l.Remarks)
	})

	t.Run("reads short rows as empty remarks", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 10", "Short"),
				data(square, "FL 100<br/>SFC", "H24"),
			),
		))

		require.Len(t, result.Airspaces, 1)
		assert.Empty(t, result.Airspaces[0].Layers[0].Remarks)
	})

	t.Run("appends comment rows without duplicated footnotes", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 11", "Commented"),
				data(square, "FL 100<br/>SFC", "H24", "Firing", ""),
				comment("Danger area activity (2)(2) notified by NOTAM."),
			),
		))

		require.Len(t, result.Airspaces, 1)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, "**RESTRICTION**\nFiring\nDanger area activity notified by NOTAM.", result.Airspaces[0].Layers[0].Remarks)
	})

	t.Run("warns about comments before any layer", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				comment("Orphan note"),
				header("EG D 12", "Late"),
				comment("Early note"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
		))

		require.Len(t, result.Airspaces, 1)
		assert.Empty(t, result.Airspaces[0].Layers[0].Remarks)
		require.Len(t, result.Warnings, 2)
		assert.Equal(t, 1, result.Warnings[0].Row)
		assert.Empty(t, result.Warnings[0].Airspace)
		assert.Equal(t, 3, result.Warnings[1].Row)
		assert.Equal(t, "EG-D12 Late", result.Warnings[1].Airspace)
	})

	t.Run("keeps the first of duplicate airspaces", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 13", "Twice"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
				data(square, "FL 200<br/>FL 100", "H24", "", ""),
				comment("Applies to both"),
			),
			heading("ENR 5.1-5-2 OTHER ACTIVITIES"),
			table(
				header("EG D 13", "Twice"),
				data(square, "FL 300<br/>SFC", "H24", "", ""),
			),
		))

		require.Len(t, result.Airspaces, 1)
		assert.Empty(t, result.Warnings)
		l := result.Airspaces[0].Layers[0]
		assert.Equal(t, "FL100/GND", l.VerticalLimits.String())
		assert.Equal(t, "Applies to both", l.Remarks)
	})

	t.Run("warns about unknown source types and orphan data rows", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG X 1", "Unknown"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
		))

		assert.Empty(t, result.Airspaces)
		require.Len(t, result.Warnings, 2)
		assert.Equal(t, enrzones.EINVALID, result.Warnings[0].Code)
		assert.Equal(t, "unknown type `X'", result.Warnings[0].Message)
		assert.Equal(t, 2, result.Warnings[1].Row)
		assert.Equal(t, "data row without airspace", result.Warnings[1].Message)
	})

	t.Run("ignores tables without a header", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			"<table><tbody><tr><td>Layout only</td><td>x</td><td>y</td></tr></tbody></table>",
			table(
				header("EG D 14", "Headed"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
		))

		require.Len(t, result.Airspaces, 1)
		assert.Empty(t, result.Warnings)
	})

	t.Run("warns about blank timetables", func(t *testing.T) {
		t.Parallel()

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 15", "Untimed"),
				data(square, "FL 100<br/>SFC", " ", "", ""),
			),
		))

		assert.Empty(t, result.Airspaces)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, enrzones.ETIMETABLE, result.Warnings[0].Code)
	})

	t.Run("confines panics to their row", func(t *testing.T) {
		t.Parallel()

		calls := 0
		geometries := &mock.GeometryParser{
			ParseGeometryFn: func(text string) (enrzones.Geometry, error) {
				calls++
				if calls == 1 {
					panic("boom")
				}
				return enrzones.NewCircleGeometry(enrzones.Coordinate{Lat: 51, Long: 0}, enrzones.Distance{Value: 2, Unit: enrzones.NauticalMiles}), nil
			},
		}

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 16", "Fragile"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
		), enr.WithGeometryParser(geometries))

		require.Len(t, result.Airspaces, 1)
		assert.True(t, result.Airspaces[0].Geometry.IsCircle())
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, enrzones.EINTERNAL, result.Warnings[0].Code)
		assert.Equal(t, "boom", result.Warnings[0].Message)
	})

	t.Run("passes cell text to the configured parsers", func(t *testing.T) {
		t.Parallel()

		var layerText, timetableText string
		layers := &mock.LayerParser{
			ParseLayerFn: func(text string) (*enrzones.Layer, error) {
				layerText = text
				return &enrzones.Layer{}, nil
			},
		}
		timetables := &mock.TimetableParser{
			ParseTimetableFn: func(text string) (*enrzones.Timetable, error) {
				timetableText = text
				return &enrzones.Timetable{Code: enrzones.TimetableHO}, nil
			},
		}

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 17", "Mocked"),
				data(square, "limits", "schedule", "", ""),
			),
		), enr.WithLayerParser(layers), enr.WithTimetableParser(timetables))

		require.Len(t, result.Airspaces, 1)
		assert.Equal(t, "limits", strings.TrimSpace(layerText))
		assert.Equal(t, "schedule", strings.TrimSpace(timetableText))
		assert.Equal(t, enrzones.TimetableHO, result.Airspaces[0].Layers[0].Timetable.Code)
	})

	t.Run("drops airspaces that fail validation", func(t *testing.T) {
		t.Parallel()

		timetables := &mock.TimetableParser{
			ParseTimetableFn: func(text string) (*enrzones.Timetable, error) {
				if strings.TrimSpace(text) == "none" {
					return nil, nil
				}
				return &enrzones.Timetable{Code: enrzones.TimetableH24}, nil
			},
		}

		result := extract(t, page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 18", "Unscheduled"),
				data(square, "FL 100<br/>SFC", "none", "", ""),
				header("EG D 19", "Scheduled"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
		), enr.WithTimetableParser(timetables))

		require.Len(t, result.Airspaces, 1)
		assert.Equal(t, "EG-D19 Scheduled", result.Airspaces[0].Name)
		require.Len(t, result.Warnings, 1)
		assert.Equal(t, 2, result.Warnings[0].Row)
		assert.Equal(t, enrzones.EINVALID, result.Warnings[0].Code)
		assert.Equal(t, "airspace timetable required", result.Warnings[0].Message)
	})

	t.Run("fails on unrecognized headings", func(t *testing.T) {
		t.Parallel()

		x, err := enr.NewExtractor(enrzones.DefaultConfig())
		require.NoError(t, err)
		m, err := goquery.NewParser().Parse(strings.NewReader(page(heading("GEN 1.2 ENTRY"))))
		require.NoError(t, err)

		_, err = x.Extract(context.Background(), &enrzones.Document{Name: "EG-ENR-5.1", Markup: m})

		assert.Equal(t, enrzones.ECONFIG, enrzones.ErrorCode(err))
	})

	t.Run("fails on unconfigured sections", func(t *testing.T) {
		t.Parallel()

		x, err := enr.NewExtractor(enrzones.DefaultConfig())
		require.NoError(t, err)
		m, err := goquery.NewParser().Parse(strings.NewReader(page(heading("ENR 5.1-9 NEW AREAS"))))
		require.NoError(t, err)

		_, err = x.Extract(context.Background(), &enrzones.Document{Name: "EG-ENR-5.1", Markup: m})

		assert.Equal(t, enrzones.ECONFIG, enrzones.ErrorCode(err))
		assert.Contains(t, enrzones.ErrorMessage(err), "5.1-9")
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		x, err := enr.NewExtractor(enrzones.DefaultConfig())
		require.NoError(t, err)
		m, err := goquery.NewParser().Parse(strings.NewReader(page(heading("ENR 5.1-1 PROHIBITED AREAS"))))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err = x.Extract(ctx, &enrzones.Document{Name: "EG-ENR-5.1", Markup: m})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		t.Parallel()

		x, err := enr.NewExtractor(enrzones.DefaultConfig())
		require.NoError(t, err)

		_, err = x.Extract(context.Background(), &enrzones.Document{Name: "EG-ENR-5.1"})

		assert.Equal(t, enrzones.EINVALID, enrzones.ErrorCode(err))
	})

	t.Run("walks markup through the element interface", func(t *testing.T) {
		t.Parallel()

		cells := func(texts ...string) []*mock.Element {
			var out []*mock.Element
			for _, text := range texts {
				out = append(out, &mock.Element{TagName: "td", Content: text})
			}
			return out
		}
		body := &mock.Element{TagName: "tbody", Children: []*mock.Element{
			{TagName: "tr", Pos: "tr[1]", Attrs: map[string]string{"id": "x-TXT_NAME"}, Children: cells("EG R 5", "Restricted Echo")},
			{TagName: "tr", Pos: "tr[2]", Children: cells(square, "FL 50\nSFC", "HJ", "", "")},
		}}
		m := &mock.Markup{FindAllFn: func(tags ...string) []enrzones.Element {
			return []enrzones.Element{
				&mock.Element{TagName: "h4", Content: "ENR 5.1-3 RESTRICTED AREAS"},
				&mock.Element{TagName: "thead"},
				body,
			}
		}}
		x, err := enr.NewExtractor(enrzones.DefaultConfig())
		require.NoError(t, err)

		result, err := x.Extract(context.Background(), &enrzones.Document{Name: "EG-ENR-5.1", Markup: m})

		require.NoError(t, err)
		require.Len(t, result.Airspaces, 1)
		assert.Equal(t, "EG-R5 Restricted Echo", result.Airspaces[0].Name)
		assert.Equal(t, "tr[1]", result.Airspaces[0].Source.Position)
		assert.Equal(t, enrzones.TimetableHJ, result.Airspaces[0].Layers[0].Timetable.Code)
	})
}

func TestNewExtractor(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid configuration", func(t *testing.T) {
		t.Parallel()

		cfg := enrzones.DefaultConfig()
		cfg.SectionPattern = "("

		_, err := enr.NewExtractor(cfg)

		assert.Equal(t, enrzones.ECONFIG, enrzones.ErrorCode(err))
	})

	t.Run("is not affected by later configuration changes", func(t *testing.T) {
		t.Parallel()

		cfg := enrzones.DefaultConfig()
		x, err := enr.NewExtractor(cfg)
		require.NoError(t, err)
		cfg.Sections["5.1-4"] = false

		m, err := goquery.NewParser().Parse(strings.NewReader(page(
			heading("ENR 5.1-4 DANGER AREAS"),
			table(
				header("EG D 1", "Alpha"),
				data(square, "FL 100<br/>SFC", "H24", "", ""),
			),
		)))
		require.NoError(t, err)

		result, err := x.Extract(context.Background(), &enrzones.Document{Name: "EG-ENR-5.1", Markup: m})

		require.NoError(t, err)
		assert.Len(t, result.Airspaces, 1)
	})
}
