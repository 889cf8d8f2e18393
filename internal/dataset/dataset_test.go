package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/referendum-atlas/backend/internal/config"
)

func testLoader() *Loader {
	return NewLoader(config.Data{
		Referendum:  "testdata/referendum.csv",
		Regions:     "testdata/regions.csv",
		Departments: "testdata/departments.csv",
		Shapes:      "testdata/regions.geojson",
	})
}

func TestLoader_Regions(t *testing.T) {
	regions, err := testLoader().Regions()
	require.NoError(t, err)
	require.Len(t, regions, 3)

	assert.Equal(t, "84", regions[0].CodeReg)
	assert.Equal(t, "Auvergne-Rhône-Alpes", regions[0].NameReg)
	assert.Equal(t, "COM", regions[2].CodeReg)
}

func TestLoader_Departments(t *testing.T) {
	departments, err := testLoader().Departments()
	require.NoError(t, err)
	require.Len(t, departments, 4)

	assert.Equal(t, "01", departments[0].CodeDep)
	assert.Equal(t, "Ain", departments[0].NameDep)
	assert.Equal(t, "84", departments[0].CodeReg)
	assert.Equal(t, "975", departments[3].CodeDep)
}

func TestLoader_Referendum(t *testing.T) {
	rows, err := testLoader().Referendum()
	require.NoError(t, err)
	require.Len(t, rows, 5)

	t.Run("keeps raw department codes", func(t *testing.T) {
		assert.Equal(t, "1", rows[0].DepartmentCode)
		assert.Equal(t, "ZA", rows[3].DepartmentCode)
	})

	t.Run("parses counts", func(t *testing.T) {
		require.NotNil(t, rows[0].Registered)
		assert.EqualValues(t, 598, *rows[0].Registered)
		require.NotNil(t, rows[0].ChoiceB)
		assert.EqualValues(t, 329, *rows[0].ChoiceB)
	})

	t.Run("empty count cell loads as nil", func(t *testing.T) {
		assert.Nil(t, rows[4].Null)
		require.NotNil(t, rows[4].Registered)
		assert.EqualValues(t, 86419, *rows[4].Registered)
	})
}

func TestLoader_Shapes(t *testing.T) {
	fc, err := testLoader().Shapes()
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	assert.Equal(t, "84", fc.Features[0].Properties.MustString("code", ""))
	assert.Equal(t, "Provence-Alpes-Côte d'Azur", fc.Features[1].Properties.MustString("nom", ""))
}

func TestLoader_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,code,slug\n1,84,ara\n"), 0o644))

	l := NewLoader(config.Data{Regions: path})
	_, err := l.Regions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `missing column "name"`)
}

func TestLoader_MissingFile(t *testing.T) {
	l := NewLoader(config.Data{Referendum: "testdata/nope.csv"})
	_, err := l.Referendum()
	require.Error(t, err)
}
