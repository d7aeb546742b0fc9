package chart

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"weather-dashboard/internal/types"
)

const (
	lineWidth   = 2.0
	pointRadius = 3.0
)

// Series is one day of hourly values to plot
type Series struct {
	Labels []string
	Values []float64
	Codes  []types.WeatherCode
}

// DisplayPoint is a plotted value. It is recomputed on every render.
type DisplayPoint struct {
	X     float64
	Y     float64
	Value float64
	Code  types.WeatherCode
}

// Canvas is a drawing surface sized in logical (CSS) pixels and backed by a
// raster scaled by the device pixel ratio.
type Canvas struct {
	dc     *gg.Context
	width  float64
	height float64
	ratio  float64
}

// NewCanvas allocates a surface of width*ratio by height*ratio device pixels.
// A ratio that is not a positive finite number is treated as 1.
func NewCanvas(width, height int, pixelRatio float64) *Canvas {
	if !(pixelRatio > 0) || math.IsInf(pixelRatio, 0) {
		pixelRatio = 1
	}
	w := max(int(math.Round(float64(width)*pixelRatio)), 1)
	h := max(int(math.Round(float64(height)*pixelRatio)), 1)
	return &Canvas{
		dc:     gg.NewContext(w, h),
		width:  float64(width),
		height: float64(height),
		ratio:  pixelRatio,
	}
}

func (c *Canvas) Width() float64      { return c.width }
func (c *Canvas) Height() float64     { return c.height }
func (c *Canvas) PixelRatio() float64 { return c.ratio }

// Image returns the device-pixel raster
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the raster as PNG
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Renderer draws temperature line charts. Font faces are not safe for
// concurrent use, so renders are serialized.
type Renderer struct {
	mu     sync.Mutex
	font   *opentype.Font
	faces  map[float64]font.Face
	logger *slog.Logger
}

func NewRenderer(logger *slog.Logger) *Renderer {
	r := &Renderer{
		faces:  make(map[float64]font.Face),
		logger: logger.With("component", "chart-renderer"),
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		r.logger.Warn("failed to parse bundled font, falling back to bitmap face", "error", err)
		return r
	}
	r.font = f
	return r
}

// Render clears the canvas and draws the series with the theme's palette.
// Calling it again on the same canvas produces the same image.
func (r *Renderer) Render(c *Canvas, s Series, theme types.Theme) []DisplayPoint {
	r.mu.Lock()
	defer r.mu.Unlock()

	dc := c.dc
	pal := PaletteFor(theme)

	// the scale transform is applied exactly once per render
	dc.Identity()
	dc.Scale(c.ratio, c.ratio)

	dc.SetColor(pal.Background)
	dc.Clear()
	dc.SetLineWidth(lineWidth)

	frame := FrameFor(c.width, c.height)
	rng := RangeOf(s.Values)
	points := MapPoints(s.Values, frame, rng)
	baseY := frame.Y(0, rng)

	// zero baseline
	dc.SetColor(pal.Axis)
	dc.SetDash(4, 4)
	dc.MoveTo(frame.OriginX, baseY)
	dc.LineTo(frame.OriginX+frame.Width+10, baseY)
	dc.Stroke()
	dc.SetDash()

	if len(points) > 0 {
		dc.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.SetColor(pal.Line)
		dc.Stroke()
	}

	valueFace := r.face(math.Max(10, c.width/90) * c.ratio)
	display := make([]DisplayPoint, len(points))
	for i, p := range points {
		dc.SetColor(pal.Point)
		dc.DrawCircle(p.X, p.Y, pointRadius)
		dc.Fill()

		dc.SetColor(pal.Text)
		c.text(valueFace, fmt.Sprintf("%.1f°", s.Values[i]), p.X, p.Y-8, 0.5, 0)

		display[i] = DisplayPoint{X: p.X, Y: p.Y, Value: s.Values[i], Code: codeAt(s.Codes, i)}
	}

	labelFace := r.face(math.Max(10, c.width/110) * c.ratio)
	dc.SetColor(pal.Text)
	for i, p := range points {
		c.text(labelFace, codeAt(s.Codes, i).Condition().Glyph, p.X, baseY-15, 0.5, 0)
		if i < len(s.Labels) {
			c.text(labelFace, s.Labels[i], p.X, frame.OriginY+10, 0.5, 1)
		}
	}

	c.text(labelFace, fmt.Sprintf("Max: %.1f°C", rng.Max), c.width-100, 40, 0.5, 0)
	c.text(labelFace, "0°C baseline", c.width-100, 60, 0.5, 0)

	return display
}

// text draws s anchored at logical (x, y). Glyphs are rasterized at device
// resolution with a face already scaled by the pixel ratio.
func (c *Canvas) text(face font.Face, s string, x, y, ax, ay float64) {
	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Identity()
	c.dc.SetFontFace(face)
	c.dc.DrawStringAnchored(s, x*c.ratio, y*c.ratio, ax, ay)
}

func (r *Renderer) face(size float64) font.Face {
	if f, ok := r.faces[size]; ok {
		return f
	}
	if r.font == nil {
		return basicfont.Face7x13
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		r.logger.Warn("failed to build font face", "size", size, "error", err)
		return basicfont.Face7x13
	}
	r.faces[size] = f
	return f
}

func codeAt(codes []types.WeatherCode, i int) types.WeatherCode {
	if i < len(codes) {
		return codes[i]
	}
	return types.WeatherCode(-1)
}
