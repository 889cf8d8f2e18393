package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/referendum-atlas/backend/internal/domain"
)

func joinedRow(codeReg, nameReg string, reg, abs, nul, a, b int64) domain.ReferendumAreaRow {
	return domain.ReferendumAreaRow{
		CodeReg:     codeReg,
		NameReg:     nameReg,
		CodeDep:     "01",
		NameDep:     "Ain",
		Registered:  reg,
		Abstentions: abs,
		Null:        nul,
		ChoiceA:     a,
		ChoiceB:     b,
	}
}

func TestResultsByRegion(t *testing.T) {
	rows := []domain.ReferendumAreaRow{
		joinedRow("93", "Provence-Alpes-Cote d'Azur", 150, 30, 10, 40, 70),
		joinedRow("84", "Auvergne-Rhone-Alpes", 100, 20, 5, 45, 30),
		joinedRow("84", "Auvergne-Rhone-Alpes", 200, 40, 10, 80, 70),
	}

	results := ResultsByRegion(rows)
	require.Len(t, results, 2, "one row per region")

	assert.Equal(t, domain.RegionResult{
		CodeReg:     "84",
		NameReg:     "Auvergne-Rhone-Alpes",
		Registered:  300,
		Abstentions: 60,
		Null:        15,
		ChoiceA:     125,
		ChoiceB:     100,
	}, results[0], "counts sum over the region and codes sort ascending")

	assert.Equal(t, "93", results[1].CodeReg)

	t.Run("totals are conserved", func(t *testing.T) {
		var in, out int64
		for _, row := range rows {
			in += row.Registered + row.Abstentions + row.Null + row.ChoiceA + row.ChoiceB
		}
		for _, res := range results {
			out += res.Registered + res.Abstentions + res.Null + res.ChoiceA + res.ChoiceB
		}
		assert.Equal(t, in, out)
	})
}

func TestResultsByRegion_Empty(t *testing.T) {
	assert.Empty(t, ResultsByRegion(nil))
}

func TestRunsService_History(t *testing.T) {
	runs := &spyRuns{history: []domain.Run{{ID: uuid.New()}}}
	svc := newRunsService(runs)

	got, err := svc.History(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 5, runs.lastLim)

	t.Run("limit out of range falls back to default", func(t *testing.T) {
		_, err := svc.History(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, defaultHistoryLimit, runs.lastLim)

		_, err = svc.History(context.Background(), 1000)
		require.NoError(t, err)
		assert.Equal(t, defaultHistoryLimit, runs.lastLim)
	})
}

func TestRunsService_StoreDisabled(t *testing.T) {
	svc := newRunsService(nil)

	_, err := svc.History(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrStoreDisabled)

	_, err = svc.Results(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrStoreDisabled)
}
