package render

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/referendum-atlas/backend/internal/config"
	"github.com/referendum-atlas/backend/internal/domain"
)

func squareFeature(code, name string, minLon, minLat, size float64) *geojson.Feature {
	ring := orb.Ring{
		{minLon, minLat},
		{minLon + size, minLat},
		{minLon + size, minLat + size},
		{minLon, minLat + size},
		{minLon, minLat},
	}

	f := geojson.NewFeature(orb.Polygon{ring})
	f.Properties["code"] = code
	f.Properties["nom"] = name

	return f
}

func TestRenderer_RegionMap(t *testing.T) {
	shapes := geojson.NewFeatureCollection()
	shapes.Append(squareFeature("93", "Provence-Alpes-Cote d'Azur", 5, 43, 2))
	shapes.Append(squareFeature("84", "Auvergne-Rhone-Alpes", 2, 44, 2))

	results := []domain.RegionResult{
		{CodeReg: "84", NameReg: "Auvergne-Rhone-Alpes", Registered: 300, ChoiceA: 30, ChoiceB: 10},
	}

	r := NewRenderer(config.Render{Width: 400, Height: 400})
	m, err := r.RegionMap(shapes, results)
	require.NoError(t, err)

	require.Len(t, m.Features, 2)

	matched := m.Features[0]
	assert.Equal(t, "84", matched.CodeReg, "features sort by region code")
	assert.Equal(t, "Auvergne-Rhone-Alpes", matched.NameReg)
	assert.EqualValues(t, 300, matched.Registered)
	assert.InDelta(t, 0.75, matched.Ratio, 1e-9)

	unmatched := m.Features[1]
	assert.Equal(t, "93", unmatched.CodeReg)
	assert.Equal(t, "Provence-Alpes-Cote d'Azur", unmatched.NameReg, "name falls back to the shape property")
	assert.Zero(t, unmatched.Registered)
	assert.True(t, math.IsNaN(unmatched.Ratio), "no result leaves the ratio undefined")

	bounds := m.img.Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 400, bounds.Dy())
}

func TestRenderer_RegionMap_PaintsRatio(t *testing.T) {
	shapes := geojson.NewFeatureCollection()
	shapes.Append(squareFeature("84", "Auvergne-Rhone-Alpes", 2, 44, 2))

	results := []domain.RegionResult{
		{CodeReg: "84", NameReg: "Auvergne-Rhone-Alpes", ChoiceA: 30, ChoiceB: 10},
	}

	r := NewRenderer(config.Render{Width: 400, Height: 400})
	m, err := r.RegionMap(shapes, results)
	require.NoError(t, err)

	// The single shape spans the whole drawable area, so the canvas center
	// lies inside it.
	got := color.RGBAModel.Convert(m.img.At(200, 200)).(color.RGBA)
	assert.Equal(t, ratioColor(0.75), got)
}

func TestRenderer_RegionMap_PNG(t *testing.T) {
	shapes := geojson.NewFeatureCollection()
	shapes.Append(squareFeature("84", "Auvergne-Rhone-Alpes", 2, 44, 2))

	r := NewRenderer(config.Render{Width: 200, Height: 200})
	m, err := r.RegionMap(shapes, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.PNG(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), "writes a PNG signature")
}

func TestRenderer_RegionMap_NoShapes(t *testing.T) {
	r := NewRenderer(config.Render{Width: 200, Height: 200})

	_, err := r.RegionMap(nil, nil)
	assert.Error(t, err)

	_, err = r.RegionMap(geojson.NewFeatureCollection(), nil)
	assert.Error(t, err)
}
