package render

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/referendum-atlas/backend/internal/domain"
)

func TestWriteTable(t *testing.T) {
	results := []domain.RegionResult{
		{CodeReg: "84", NameReg: "Auvergne-Rhone-Alpes", Registered: 300, Abstentions: 60, Null: 15, ChoiceA: 120, ChoiceB: 100},
		{CodeReg: "93", NameReg: "Provence-Alpes-Cote d'Azur", Registered: 150, Abstentions: 150, Null: 0, ChoiceA: 0, ChoiceB: 0},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, results))

	out := buf.String()
	assert.Contains(t, out, "CODE")
	assert.Contains(t, out, "RATIO A")
	assert.Contains(t, out, "Auvergne-Rhone-Alpes")
	assert.Contains(t, out, "0.5455", "ratio prints with four decimals")
	assert.Contains(t, out, "-", "a region without expressed votes prints a dash")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 3, "header plus one line per region")
}

func TestFormatRatio(t *testing.T) {
	assert.Equal(t, "0.7500", formatRatio(0.75))
	assert.Equal(t, "-", formatRatio(math.NaN()))
}
