package etree_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/enrzones"
	"github.com/fwojciec/enrzones/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<body>
<h4>ENR 5.1-3 DANGER AREAS</h4>
<table>
<thead><tr><th>Identification</th></tr></thead>
<tbody>
<tr id="d2e11-TXT_NAME"><td>EG D 031</td><td>Aberporth&nbsp;Range</td></tr>
<tr><td>FL 245<br/>SFC</td><td><p>Mon-Fri</p><p>0800-1700</p></td></tr>
</tbody>
</table>
</body>
</html>`

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("finds elements of several tags in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := etree.NewParser().Parse(strings.NewReader(fixture))
		require.NoError(t, err)

		elements := doc.FindAll("h4", "tbody")

		require.Len(t, elements, 2)
		assert.Equal(t, "h4", elements[0].Tag())
		assert.Equal(t, "tbody", elements[1].Tag())
		assert.Equal(t, "ENR 5.1-3 DANGER AREAS", strings.TrimSpace(elements[0].Text()))
	})

	t.Run("queries rows, attributes, and cell text", func(t *testing.T) {
		t.Parallel()

		doc, err := etree.NewParser().Parse(strings.NewReader(fixture))
		require.NoError(t, err)

		rows := doc.FindAll("tbody")[0].FindAll("tr")
		require.Len(t, rows, 2)

		id, ok := rows[0].Attr("id")
		assert.True(t, ok)
		assert.Equal(t, "d2e11-TXT_NAME", id)

		cells := rows[0].FindAll("td")
		require.Len(t, cells, 2)
		assert.Equal(t, "Aberporth Range", enrzones.Squish(cells[1].Text()))

		cells = rows[1].FindAll("td")
		assert.Equal(t, "FL 245\nSFC", strings.TrimSpace(cells[0].Text()))
		assert.Equal(t, "Mon-Fri\n0800-1700", strings.TrimSpace(cells[1].Text()))
	})

	t.Run("reports ordinal positions", func(t *testing.T) {
		t.Parallel()

		doc, err := etree.NewParser().Parse(strings.NewReader(fixture))
		require.NoError(t, err)

		rows := doc.FindAll("tr")

		require.Len(t, rows, 3)
		assert.Equal(t, "tr[2]", rows[1].Position())
	})

	t.Run("rejects malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := etree.NewParser().Parse(strings.NewReader(`<html><body class=`))

		require.Error(t, err)
		assert.Equal(t, enrzones.EINVALID, enrzones.ErrorCode(err))
	})
}
