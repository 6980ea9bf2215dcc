package widget

import "math"

// Unconstrained marks an axis with no upper size bound.
var Unconstrained = float32(math.Inf(1))

// Limits describes the sizing constraints handed to an element during a
// layout pass. An element reports its natural size by laying itself out
// against the least restrictive applicable limits.
type Limits struct {
	Min Vec2 // Smallest size the element may report
	Max Vec2 // Largest size the element may report
}

// NewLimits creates limits with the given bounds.
func NewLimits(minSize, maxSize Vec2) Limits {
	return Limits{Min: minSize, Max: maxSize}
}

// Unbounded returns limits that impose no upper bound on either axis.
func Unbounded() Limits {
	return Limits{Max: Vec2{X: Unconstrained, Y: Unconstrained}}
}

// WithWidth derives a variant with the width fixed to exactly w.
// Height bounds are unchanged.
func (l Limits) WithWidth(w float32) Limits {
	l.Min.X = w
	l.Max.X = w
	return l
}

// WithMaxSize derives a variant with the given upper bound on both axes.
func (l Limits) WithMaxSize(maxSize Vec2) Limits {
	l.Max = maxSize
	return l
}

// MaxWidth returns the maximum width the limits allow.
func (l Limits) MaxWidth() float32 {
	return l.Max.X
}

// MaxHeight returns the maximum height the limits allow.
func (l Limits) MaxHeight() float32 {
	return l.Max.Y
}

// Constrain clamps a size into the limits' bounds.
func (l Limits) Constrain(size Vec2) Vec2 {
	return Vec2{
		X: clampf(size.X, l.Min.X, l.Max.X),
		Y: clampf(size.Y, l.Min.Y, l.Max.Y),
	}
}
