package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"sort"

	"github.com/fogleman/gg"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/image/font/basicfont"

	"github.com/referendum-atlas/backend/internal/config"
	"github.com/referendum-atlas/backend/internal/domain"
)

const (
	mapMargin    = 40.0
	legendWidth  = 220.0
	legendHeight = 14.0
)

// fontPaths lists locations probed for a scalable label font. The built-in
// bitmap face is the fallback when none loads.
var fontPaths = []string{
	"fonts/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/dejavu/DejaVuSans.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
}

type Renderer struct {
	width  int
	height int
}

func NewRenderer(cfg config.Render) *Renderer {
	return &Renderer{
		width:  cfg.Width,
		height: cfg.Height,
	}
}

// RegionMap is the outcome of one render: the merged geographic table,
// sorted by region code, and the finished raster.
type RegionMap struct {
	Features []domain.MapFeature

	img image.Image
}

// PNG writes the raster to w.
func (m *RegionMap) PNG(w io.Writer) error {
	if err := png.Encode(w, m.img); err != nil {
		return fmt.Errorf("encode map: %w", err)
	}

	return nil
}

// RegionMap left-joins results onto the region shapes by the feature's
// "code" property, paints every polygon by its Choice A ratio and returns
// the merged table with the raster. Shapes without a result keep zero counts
// and a NaN ratio and render neutral. The canvas lives and dies inside this
// call; the returned value is all that survives.
func (r *Renderer) RegionMap(shapes *geojson.FeatureCollection, results []domain.RegionResult) (*RegionMap, error) {
	if shapes == nil || len(shapes.Features) == 0 {
		return nil, fmt.Errorf("empty region shape collection")
	}

	resultsByCode := make(map[string]domain.RegionResult, len(results))
	for _, res := range results {
		resultsByCode[res.CodeReg] = res
	}

	proj := newProjection(collectionBound(shapes), float64(r.width), float64(r.height))

	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(color.White)
	dc.Clear()

	features := make([]domain.MapFeature, 0, len(shapes.Features))
	for _, f := range shapes.Features {
		feature := domain.MapFeature{
			CodeReg: f.Properties.MustString("code", ""),
			NameReg: f.Properties.MustString("nom", ""),
			Ratio:   math.NaN(),
		}
		if res, ok := resultsByCode[feature.CodeReg]; ok {
			feature.NameReg = res.NameReg
			feature.Registered = res.Registered
			feature.Abstentions = res.Abstentions
			feature.Null = res.Null
			feature.ChoiceA = res.ChoiceA
			feature.ChoiceB = res.ChoiceB
			feature.Ratio = res.Ratio()
		}
		features = append(features, feature)

		fillGeometry(dc, proj, f.Geometry, ratioColor(feature.Ratio))
	}

	sort.Slice(features, func(i, j int) bool {
		return features[i].CodeReg < features[j].CodeReg
	})

	r.drawTitle(dc)
	r.drawLegend(dc)

	return &RegionMap{
		Features: features,
		img:      dc.Image(),
	}, nil
}

func collectionBound(shapes *geojson.FeatureCollection) orb.Bound {
	bound := shapes.Features[0].Geometry.Bound()
	for _, f := range shapes.Features[1:] {
		bound = bound.Union(f.Geometry.Bound())
	}

	return bound
}

// projection maps lon/lat onto the canvas: equirectangular with the
// longitude axis compressed by the cosine of the mid latitude, fitted into
// the drawable area and flipped vertically (canvas y grows downward).
type projection struct {
	bound    orb.Bound
	lonScale float64
	scale    float64
	offX     float64
	offY     float64
}

func newProjection(bound orb.Bound, width, height float64) projection {
	midLat := (bound.Min[1] + bound.Max[1]) / 2
	lonScale := math.Cos(midLat * math.Pi / 180)

	spanX := (bound.Max[0] - bound.Min[0]) * lonScale
	spanY := bound.Max[1] - bound.Min[1]
	if spanX <= 0 || spanY <= 0 {
		return projection{bound: bound, lonScale: lonScale, scale: 1, offX: mapMargin, offY: mapMargin}
	}

	scale := math.Min((width-2*mapMargin)/spanX, (height-2*mapMargin)/spanY)

	return projection{
		bound:    bound,
		lonScale: lonScale,
		scale:    scale,
		offX:     (width - spanX*scale) / 2,
		offY:     (height - spanY*scale) / 2,
	}
}

func (p projection) point(pt orb.Point) (float64, float64) {
	x := p.offX + (pt[0]-p.bound.Min[0])*p.lonScale*p.scale
	y := p.offY + (p.bound.Max[1]-pt[1])*p.scale

	return x, y
}

// fillGeometry paints a polygonal geometry. Rings are drawn into one path
// with even-odd fill so holes stay unpainted.
func fillGeometry(dc *gg.Context, proj projection, geom orb.Geometry, fill color.RGBA) {
	var polygons orb.MultiPolygon
	switch g := geom.(type) {
	case orb.Polygon:
		polygons = orb.MultiPolygon{g}
	case orb.MultiPolygon:
		polygons = g
	default:
		return
	}

	dc.SetFillRule(gg.FillRuleEvenOdd)
	for _, poly := range polygons {
		for _, ring := range poly {
			for i, pt := range ring {
				x, y := proj.point(pt)
				if i == 0 {
					dc.MoveTo(x, y)
				} else {
					dc.LineTo(x, y)
				}
			}
			dc.ClosePath()
		}

		dc.SetColor(fill)
		dc.FillPreserve()
		dc.SetColor(borderColor)
		dc.SetLineWidth(0.8)
		dc.Stroke()
	}
}

func (r *Renderer) drawTitle(dc *gg.Context) {
	dc.SetColor(color.Black)
	setFontFace(dc, 18)
	dc.DrawString("Referendum results by region", mapMargin, 30)

	setFontFace(dc, 12)
	dc.DrawString("share of Choice A among expressed votes", mapMargin, 50)
}

func (r *Renderer) drawLegend(dc *gg.Context) {
	x := mapMargin
	y := float64(r.height) - mapMargin - legendHeight

	for i := 0; i < int(legendWidth); i++ {
		dc.SetColor(ratioColor(float64(i) / (legendWidth - 1)))
		dc.DrawRectangle(x+float64(i), y, 1, legendHeight)
		dc.Fill()
	}

	dc.SetColor(borderColor)
	dc.SetLineWidth(1)
	dc.DrawRectangle(x, y, legendWidth, legendHeight)
	dc.Stroke()

	setFontFace(dc, 11)
	dc.SetColor(color.Black)
	labelY := y + legendHeight + 14
	dc.DrawString("0.0", x, labelY)
	dc.DrawStringAnchored("0.5", x+legendWidth/2, labelY, 0.5, 0)
	dc.DrawStringAnchored("1.0", x+legendWidth, labelY, 1, 0)

	swatchX := x + legendWidth + 24
	dc.SetColor(missingColor)
	dc.DrawRectangle(swatchX, y, legendHeight, legendHeight)
	dc.Fill()
	dc.SetColor(borderColor)
	dc.DrawRectangle(swatchX, y, legendHeight, legendHeight)
	dc.Stroke()
	dc.SetColor(color.Black)
	dc.DrawString("no expressed votes", swatchX+legendHeight+8, y+legendHeight-2)
}

func setFontFace(dc *gg.Context, points float64) {
	for _, path := range fontPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := dc.LoadFontFace(path, points); err == nil {
			return
		}
	}

	dc.SetFontFace(basicfont.Face7x13)
}
