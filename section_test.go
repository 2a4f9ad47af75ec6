package enrzones_test

import (
	"testing"

	"github.com/fwojciec/enrzones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionIndex_Lookup(t *testing.T) {
	t.Parallel()

	cfg := enrzones.DefaultConfig()
	idx, err := enrzones.NewSectionIndex(cfg.SectionPattern, cfg.Sections)
	require.NoError(t, err)

	tests := []struct {
		heading string
		want    enrzones.Section
	}{
		{heading: "ENR 5.1-1 PROHIBITED AREAS", want: enrzones.Section{Number: "5.1-1", Parse: true}},
		{heading: "ENR 5.1-2 RESTRICTED AREAS", want: enrzones.Section{Number: "5.1-2", Parse: false}},
		{heading: "ENR 5.1-5-2 Other activities", want: enrzones.Section{Number: "5.1-5-2", Parse: true}},
		{heading: "  ENR 5.1-4.\n DANGER AREAS", want: enrzones.Section{Number: "5.1-4", Parse: true}},
	}

	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			t.Parallel()

			got, err := idx.Lookup(tt.heading)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unrecognized headings", func(t *testing.T) {
		t.Parallel()

		_, err := idx.Lookup("GEN 1.2 ENTRY")

		assert.Equal(t, enrzones.ECONFIG, enrzones.ErrorCode(err))
	})

	t.Run("rejects unconfigured sections", func(t *testing.T) {
		t.Parallel()

		_, err := idx.Lookup("ENR 5.1-6 NEW AREAS")

		assert.Equal(t, enrzones.ECONFIG, enrzones.ErrorCode(err))
		assert.Equal(t, "section 5.1-6 is not configured", enrzones.ErrorMessage(err))
	})
}

func TestNewSectionIndex(t *testing.T) {
	t.Parallel()

	_, err := enrzones.NewSectionIndex(`^ENR`, nil)
	assert.Equal(t, enrzones.ECONFIG, enrzones.ErrorCode(err))

	_, err = enrzones.NewSectionIndex(`(`, nil)
	assert.Equal(t, enrzones.ECONFIG, enrzones.ErrorCode(err))
}
