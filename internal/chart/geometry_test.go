package chart

import (
	"math"
	"testing"
)

var frame = Frame{Left: 10, Top: 20, Width: 300, Height: 100}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestLinePointsGuardsSmallSeries(t *testing.T) {
	if points := LinePoints(nil, frame); points != nil {
		t.Errorf("expected nil for empty series, got %v", points)
	}
	if points := LinePoints([]float64{42}, frame); points != nil {
		t.Errorf("expected nil for single point, got %v", points)
	}
}

func TestLinePointsNormalization(t *testing.T) {
	points := LinePoints([]float64{0, 50, 100}, frame)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	// min at the bottom edge, max at the top edge
	if !almostEqual(points[0].Y, frame.Top+frame.Height) {
		t.Errorf("expected min at bottom %f, got %f", frame.Top+frame.Height, points[0].Y)
	}
	if !almostEqual(points[2].Y, frame.Top) {
		t.Errorf("expected max at top %f, got %f", frame.Top, points[2].Y)
	}
	if !almostEqual(points[1].Y, frame.Top+frame.Height/2) {
		t.Errorf("expected midpoint at %f, got %f", frame.Top+frame.Height/2, points[1].Y)
	}

	// x spaced evenly across the track
	if !almostEqual(points[0].X, frame.Left) {
		t.Errorf("expected first x at %f, got %f", frame.Left, points[0].X)
	}
	if !almostEqual(points[1].X, frame.Left+frame.Width/2) {
		t.Errorf("expected middle x at %f, got %f", frame.Left+frame.Width/2, points[1].X)
	}
	if !almostEqual(points[2].X, frame.Left+frame.Width) {
		t.Errorf("expected last x at %f, got %f", frame.Left+frame.Width, points[2].X)
	}
}

func TestLinePointsFlatSeriesDoesNotDivideByZero(t *testing.T) {
	points := LinePoints([]float64{500, 500, 500}, frame)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	for _, p := range points {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
			t.Fatalf("flat series produced non-finite Y: %f", p.Y)
		}
	}
}

func TestLinePointsWithBaselineKeepsBaselineInFrame(t *testing.T) {
	// values hug the baseline; without the range floor the reference line
	// would sit on a degenerate range
	values := []float64{1000, 1001, 999}
	points, baselineY := LinePointsWithBaseline(values, 1000, frame)
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	if baselineY < frame.Top || baselineY > frame.Top+frame.Height {
		t.Errorf("baseline outside frame: %f", baselineY)
	}
	// the floor re-centers the range on the baseline, placing it mid-track
	if !almostEqual(baselineY, frame.Top+frame.Height/2) {
		t.Errorf("expected baseline at mid-track %f, got %f", frame.Top+frame.Height/2, baselineY)
	}
	for _, p := range points {
		if p.Y < frame.Top || p.Y > frame.Top+frame.Height {
			t.Errorf("point outside frame: %f", p.Y)
		}
	}
}

func TestLinePointsWithBaselineGuardsSmallSeries(t *testing.T) {
	points, _ := LinePointsWithBaseline([]float64{1}, 1, frame)
	if points != nil {
		t.Errorf("expected nil for single point, got %v", points)
	}
}

func TestBarRects(t *testing.T) {
	points := BarRects([]float64{0, 100}, frame)
	if len(points) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(points))
	}
	// zero-value bar tops out at the bottom edge, max at the top
	if !almostEqual(points[0].Y, frame.Top+frame.Height) {
		t.Errorf("expected zero bar at bottom, got %f", points[0].Y)
	}
	if !almostEqual(points[1].Y, frame.Top) {
		t.Errorf("expected max bar at top, got %f", points[1].Y)
	}
	if !almostEqual(points[1].X, frame.Left+frame.Width/2) {
		t.Errorf("expected second bar at mid-track, got %f", points[1].X)
	}
}

func TestPieSlices(t *testing.T) {
	slices := PieSlices([]float64{1, 1, 2})
	if len(slices) != 3 {
		t.Fatalf("expected 3 slices, got %d", len(slices))
	}

	var total float64
	for _, s := range slices {
		total += s.SweepAngle
	}
	if !almostEqual(total, 360) {
		t.Errorf("expected slices to sum to 360, got %f", total)
	}
	if !almostEqual(slices[0].StartAngle, -90) {
		t.Errorf("expected first slice to start at -90, got %f", slices[0].StartAngle)
	}
	if !almostEqual(slices[2].SweepAngle, 180) {
		t.Errorf("expected dominant slice sweep 180, got %f", slices[2].SweepAngle)
	}
}

func TestPieSlicesIgnoresNonPositiveValues(t *testing.T) {
	if slices := PieSlices([]float64{0, 0}); slices != nil {
		t.Errorf("expected nil for all-zero values, got %v", slices)
	}
	slices := PieSlices([]float64{-5, 10})
	if len(slices) != 1 {
		t.Fatalf("expected 1 slice, got %d", len(slices))
	}
	if !almostEqual(slices[0].SweepAngle, 360) {
		t.Errorf("expected full circle, got %f", slices[0].SweepAngle)
	}
}
