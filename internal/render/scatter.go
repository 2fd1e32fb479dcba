// Package render draws the community compass: one marker per community
// on the fixed [-1,1]×[-1,1] grid, sized by spread.
package render

import (
	"fmt"
	"image/color"
	"time"

	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/kamik423/quadrant/internal/model"
)

// Quadrant tints, one per compass corner.
var (
	tintAuthLeft  = color.NRGBA{R: 0xff, G: 0x75, B: 0x75, A: 0x50}
	tintAuthRight = color.NRGBA{R: 0x42, G: 0xaa, B: 0xff, A: 0x50}
	tintLibLeft   = color.NRGBA{R: 0x9a, G: 0xed, B: 0x98, A: 0x50}
	tintLibRight  = color.NRGBA{R: 0xf5, G: 0xf4, B: 0x71, A: 0x50}

	markerColor = color.NRGBA{R: 0x3c, G: 0x3c, B: 0x3c, A: 0xff}
)

// Renderer writes the compass scatter plot to disk.
type Renderer struct {
	mode string
	now  func() time.Time
}

// NewRenderer creates a renderer; mode appears in the caption.
func NewRenderer(mode string) *Renderer {
	return &Renderer{mode: mode, now: time.Now}
}

// Render writes a PNG of the summaries to path. Summaries without data
// are skipped, never drawn at the origin. Any failure is a RenderError;
// a partial image is not a valid result.
func (r *Renderer) Render(summaries []model.CommunitySummary, path string) error {
	p := plot.New()
	p.Title.Text = "Community compass"
	p.X.Min, p.X.Max = -1.1, 1.1
	p.Y.Min, p.Y.Max = -1.1, 1.1
	p.X.Label.Text = r.caption(summaries)
	p.Add(plotter.NewGrid())

	if err := addQuadrants(p); err != nil {
		return &model.RenderError{Path: path, Err: err}
	}

	drawable := make([]model.CommunitySummary, 0, len(summaries))
	for _, s := range summaries {
		if !s.HasData() {
			log.WithField("community", s.Name).Warn("no data, not plotted")
			continue
		}
		drawable = append(drawable, s)
	}

	if err := addMarkers(p, drawable); err != nil {
		return &model.RenderError{Path: path, Err: err}
	}

	if err := p.Save(7*vg.Inch, 7*vg.Inch, path); err != nil {
		return &model.RenderError{Path: path, Err: err}
	}
	return nil
}

func (r *Renderer) caption(summaries []model.CommunitySummary) string {
	return fmt.Sprintf("%d communities · mode %s · %s",
		len(summaries), r.mode, r.now().Format("2006-01-02"))
}

// addQuadrants paints the four compass corners with the usual tints.
func addQuadrants(p *plot.Plot) error {
	quadrants := []struct {
		x0, y0, x1, y1 float64
		tint           color.Color
	}{
		{-1.1, 0, 0, 1.1, tintAuthLeft},
		{0, 0, 1.1, 1.1, tintAuthRight},
		{-1.1, -1.1, 0, 0, tintLibLeft},
		{0, -1.1, 1.1, 0, tintLibRight},
	}

	for _, q := range quadrants {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: q.x0, Y: q.y0},
			{X: q.x1, Y: q.y0},
			{X: q.x1, Y: q.y1},
			{X: q.x0, Y: q.y1},
		})
		if err != nil {
			return fmt.Errorf("quadrant polygon: %w", err)
		}
		poly.Color = q.tint
		poly.LineStyle.Width = 0
		p.Add(poly)
	}
	return nil
}

// addMarkers draws one glyph per community, radius grown by spread so a
// diffuse community reads as less certain, plus a name/count label.
func addMarkers(p *plot.Plot, summaries []model.CommunitySummary) error {
	if len(summaries) == 0 {
		return nil
	}

	pts := make(plotter.XYs, len(summaries))
	labels := make([]string, len(summaries))
	for i, s := range summaries {
		pts[i] = plotter.XY{X: s.Centroid.X, Y: s.Centroid.Y}
		labels[i] = fmt.Sprintf("r/%s (n=%d)", s.Name, s.SampleCount)
	}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("scatter: %w", err)
	}
	scatter.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		return draw.GlyphStyle{
			Color:  markerColor,
			Radius: vg.Points(5 + 14*summaries[i].Spread),
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(scatter)

	// Nudge labels above their markers in data space.
	labelPts := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		labelPts[i] = plotter.XY{X: pt.X, Y: pt.Y + 0.05}
	}
	names, err := plotter.NewLabels(plotter.XYLabels{XYs: labelPts, Labels: labels})
	if err != nil {
		return fmt.Errorf("labels: %w", err)
	}
	p.Add(names)

	return nil
}
