package enrzones

import "strings"

// RemarksAggregator merges positional text fragments into one block of
// titled paragraphs.
type RemarksAggregator struct {
	// Titles label the parts by position.
	Titles []string

	// Suppress is dropped when it is the whole text of the first part.
	Suppress string
}

// Aggregate renders each non-blank part as "**TITLE**\n<text>" and joins
// the blocks with a blank line. Returns "" when no part survives.
func (r *RemarksAggregator) Aggregate(parts ...string) (string, error) {
	if len(parts) > len(r.Titles) {
		return "", Errorf(EINTERNAL, "%d remarks parts but only %d titles", len(parts), len(r.Titles))
	}

	blocks := make([]string, 0, len(parts))
	for i, part := range parts {
		text := CompactLines(part)
		if text == "" {
			continue
		}
		if i == 0 && r.Suppress != "" && text == r.Suppress {
			continue
		}
		blocks = append(blocks, "**"+r.Titles[i]+"**\n"+text)
	}

	return strings.Join(blocks, "\n\n"), nil
}
