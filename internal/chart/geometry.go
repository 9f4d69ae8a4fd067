// Package chart maps ordered value series to normalized drawing coordinates
// for line, bar and pie rendering. All transforms are pure.
package chart

import "math"

// minRange is the floor applied to the plotted value range so a flat series
// does not divide by zero.
const minRange = 1e-9

// baselineRangeRatio is the minimum plotted range relative to the purchase
// baseline, keeping the reference line inside the frame instead of clipped.
const baselineRangeRatio = 0.10

// Frame is the drawable track area in screen coordinates.
type Frame struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Point is a screen coordinate.
type Point struct {
	X float64
	Y float64
}

// Slice is one pie segment, angles in degrees starting at 12 o'clock.
type Slice struct {
	StartAngle float64
	SweepAngle float64
}

// LinePoints maps values to evenly spaced line coordinates within the frame.
// Fewer than two points produce nothing.
func LinePoints(values []float64, f Frame) []Point {
	if len(values) < 2 {
		return nil
	}
	min, max := bounds(values)
	return plot(values, f, min, rng(min, max))
}

// LinePointsWithBaseline plots values with the range re-centered around a
// reference baseline (the purchase value), widened to at least
// baselineRangeRatio of the baseline. It returns the points and the Y
// coordinate of the baseline within the frame.
func LinePointsWithBaseline(values []float64, baseline float64, f Frame) ([]Point, float64) {
	if len(values) < 2 {
		return nil, 0
	}
	min, max := bounds(values)

	span := math.Max(max-baseline, baseline-min)
	if floor := math.Abs(baseline) * baselineRangeRatio / 2; span < floor {
		span = floor
	}
	low := baseline - span
	r := rng(low, baseline+span)

	points := plot(values, f, low, r)
	baselineY := f.Top + f.Height - ((baseline - low) / r * f.Height)
	return points, baselineY
}

// BarRects maps values to bar top edges within the frame: for each value the
// returned point is the top-left corner of its bar, bars evenly dividing the
// track width.
func BarRects(values []float64, f Frame) []Point {
	if len(values) == 0 {
		return nil
	}
	min, max := bounds(values)
	if min > 0 {
		min = 0 // bars grow from zero, not from the smallest value
	}
	r := rng(min, max)
	barWidth := f.Width / float64(len(values))

	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			X: f.Left + float64(i)*barWidth,
			Y: f.Top + f.Height - ((v - min) / r * f.Height),
		}
	}
	return points
}

// PieSlices converts values to proportional pie segments. Non-positive values
// and an all-zero series produce nothing.
func PieSlices(values []float64) []Slice {
	var total float64
	for _, v := range values {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return nil
	}

	slices := make([]Slice, 0, len(values))
	angle := -90.0
	for _, v := range values {
		if v <= 0 {
			continue
		}
		sweep := v / total * 360
		slices = append(slices, Slice{StartAngle: angle, SweepAngle: sweep})
		angle += sweep
	}
	return slices
}

func bounds(values []float64) (min, max float64) {
	min, max = values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func rng(min, max float64) float64 {
	r := max - min
	if r < minRange {
		r = minRange
	}
	return r
}

func plot(values []float64, f Frame, min, r float64) []Point {
	step := f.Width / float64(len(values)-1)
	points := make([]Point, len(values))
	for i, v := range values {
		points[i] = Point{
			X: f.Left + float64(i)*step,
			Y: f.Top + f.Height - ((v - min) / r * f.Height),
		}
	}
	return points
}
