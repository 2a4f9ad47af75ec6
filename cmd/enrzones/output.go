package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/enrzones"
	"github.com/mattn/go-runewidth"
)

// maxNameWidth caps the name column of table output.
const maxNameWidth = 48

func writeJSON(w io.Writer, results []*enrzones.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(results)
}

// writeTable prints one line per airspace, aligned by display width so
// names with non-ASCII characters line up.
func writeTable(w io.Writer, results []*enrzones.Result) error {
	rows := [][]string{{"ID", "TYPE", "NAME", "LIMITS", "TIMETABLE", "SOURCE"}}
	var count int
	for _, result := range results {
		for _, a := range result.Airspaces {
			rows = append(rows, airspaceRow(a))
			count++
		}
	}
	if err := writeColumns(w, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n%d airspaces in %d documents\n", count, len(results))
	return err
}

func airspaceRow(a *enrzones.Airspace) []string {
	typ := a.Type
	if a.LocalType != "" {
		typ += "/" + a.LocalType
	}
	var limits, timetable []string
	for _, l := range a.Layers {
		limits = append(limits, l.VerticalLimits.String())
		if l.Timetable != nil {
			timetable = append(timetable, string(l.Timetable.Code))
		}
	}
	return []string{
		a.ID,
		typ,
		runewidth.Truncate(a.Name, maxNameWidth, "…"),
		strings.Join(limits, " "),
		strings.Join(timetable, " "),
		a.Source.String(),
	}
}

// writeColumns pads every cell but the last to the widest cell of its column.
func writeColumns(w io.Writer, rows [][]string) error {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i == len(row)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString("  ")
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
