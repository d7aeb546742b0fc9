package chart

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestRangeOf(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Range
	}{
		{name: "empty", values: nil, want: Range{}},
		{name: "positive series keeps zero floor", values: []float64{4, 12, 8}, want: Range{Min: 0, Max: 12}},
		{name: "negative minimum", values: []float64{-6, 3, 1}, want: Range{Min: -6, Max: 3}},
		{name: "flat series", values: []float64{5, 5, 5}, want: Range{Min: 0, Max: 5}},
		{name: "all negative", values: []float64{-8, -2}, want: Range{Min: -8, Max: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangeOf(tt.values); got != tt.want {
				t.Errorf("RangeOf(%v) = %+v, want %+v", tt.values, got, tt.want)
			}
		})
	}
}

func TestMapPoints_Bounds(t *testing.T) {
	series := [][]float64{
		{12.5, 14.1, 17.9, 21.3, 19.8, 15.2},
		{-7.5, -3.2, 0.4, 2.2},
		{-12, -9, -15},
		{0, 0, 0, 0},
		{5, 5, 5},
		{42},
	}
	f := FrameFor(900, 420)

	for _, values := range series {
		points := MapPoints(values, f, RangeOf(values))
		if len(points) != len(values) {
			t.Fatalf("MapPoints(%v) returned %d points", values, len(points))
		}
		for i, p := range points {
			if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
				t.Fatalf("MapPoints(%v)[%d] = %+v, not finite", values, i, p)
			}
			if p.Y < f.OriginY-f.Height-epsilon || p.Y > f.OriginY+epsilon {
				t.Errorf("MapPoints(%v)[%d].Y = %v, outside [%v, %v]", values, i, p.Y, f.OriginY-f.Height, f.OriginY)
			}
		}
	}
}

func TestMapPoints_EvenSpacing(t *testing.T) {
	values := []float64{3, 9, 1, 7, 4}
	f := Frame{OriginX: 50, OriginY: 350, Width: 800, Height: 300}
	points := MapPoints(values, f, RangeOf(values))

	step := f.Width / float64(len(values)-1)
	for i := range points {
		want := f.OriginX + float64(i)*step
		if math.Abs(points[i].X-want) > epsilon {
			t.Errorf("point %d X = %v, want %v", i, points[i].X, want)
		}
		if i > 0 && points[i].X <= points[i-1].X {
			t.Errorf("point %d X = %v not greater than previous %v", i, points[i].X, points[i-1].X)
		}
	}
	if last := points[len(points)-1].X; math.Abs(last-(f.OriginX+f.Width)) > epsilon {
		t.Errorf("last X = %v, want right edge %v", last, f.OriginX+f.Width)
	}
}

func TestMapPoints_AffineY(t *testing.T) {
	values := []float64{0, 10, 20}
	f := Frame{OriginX: 0, OriginY: 200, Width: 100, Height: 100}
	points := MapPoints(values, f, RangeOf(values))

	wantY := []float64{200, 150, 100}
	for i, p := range points {
		if math.Abs(p.Y-wantY[i]) > epsilon {
			t.Errorf("point %d Y = %v, want %v", i, p.Y, wantY[i])
		}
	}
}

func TestMapPoints_SinglePointCentered(t *testing.T) {
	f := Frame{OriginX: 50, OriginY: 350, Width: 800, Height: 300}
	points := MapPoints([]float64{7}, f, RangeOf([]float64{7}))
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	if points[0].X != 450 {
		t.Errorf("X = %v, want 450", points[0].X)
	}
}

func TestMapPoints_Empty(t *testing.T) {
	points := MapPoints(nil, FrameFor(900, 420), RangeOf(nil))
	if points == nil || len(points) != 0 {
		t.Errorf("MapPoints(nil) = %#v, want empty non-nil slice", points)
	}
}

func TestMapPoints_DegenerateRange(t *testing.T) {
	f := Frame{OriginX: 0, OriginY: 100, Width: 100, Height: 100}
	points := MapPoints([]float64{0, 0, 0}, f, Range{Min: 0, Max: 0})
	for i, p := range points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Fatalf("point %d Y = %v, not finite", i, p.Y)
		}
		if p.Y != f.OriginY {
			t.Errorf("point %d Y = %v, want %v", i, p.Y, f.OriginY)
		}
	}
}
