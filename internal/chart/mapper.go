package chart

import "math"

// Frame is the plotting rectangle in logical pixels. OriginX/OriginY is the
// bottom-left corner; y grows downward as on any raster surface.
type Frame struct {
	OriginX float64
	OriginY float64
	Width   float64
	Height  float64
}

// Range is the value interval mapped onto the frame height
type Range struct {
	Min float64
	Max float64
}

// Point is a series value placed in pixel space
type Point struct {
	X float64
	Y float64
}

// FrameFor lays out the plotting rectangle inside a surface of the given
// logical size, leaving room for hour labels, value labels and the summary.
func FrameFor(width, height float64) Frame {
	return Frame{
		OriginX: 50,
		OriginY: height - 50,
		Width:   width - 80,
		Height:  height - 100,
	}
}

// RangeOf returns [min(0, min(values)), max(values)] so the zero baseline is
// representable whenever the series is non-negative.
func RangeOf(values []float64) Range {
	if len(values) == 0 {
		return Range{}
	}
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return Range{Min: math.Min(0, lo), Max: hi}
}

// Span is Max-Min, or 1 for a degenerate range
func (r Range) Span() float64 {
	span := r.Max - r.Min
	if span <= 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 1
	}
	return span
}

// Y maps a value to its vertical pixel coordinate
func (f Frame) Y(value float64, r Range) float64 {
	return f.OriginY - (value-r.Min)*(f.Height/r.Span())
}

// X returns the horizontal pixel coordinate of point i out of n
func (f Frame) X(i, n int) float64 {
	if n <= 1 {
		return f.OriginX + f.Width/2
	}
	return f.OriginX + float64(i)*(f.Width/float64(n-1))
}

// MapPoints places each value in the frame: uniform x spacing, affine y.
// An empty series yields an empty slice.
func MapPoints(values []float64, f Frame, r Range) []Point {
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			X: f.X(i, len(values)),
			Y: f.Y(v, r),
		}
	}
	return points
}
