package widget_test

import (
	"testing"

	"github.com/go-theft-auto/widget"
)

func TestLimitsWithWidth(t *testing.T) {
	limits := boundedLimits(800, 600).WithWidth(50)

	if limits.Min.X != 50 || limits.Max.X != 50 {
		t.Errorf("width bounds [%v, %v], want fixed 50", limits.Min.X, limits.Max.X)
	}
	if limits.Max.Y != 600 {
		t.Errorf("max height = %v, want unchanged 600", limits.Max.Y)
	}
	if got := limits.MaxWidth(); got != 50 {
		t.Errorf("MaxWidth() = %v, want 50", got)
	}
}

func TestLimitsConstrain(t *testing.T) {
	limits := widget.NewLimits(widget.Vec2{X: 10, Y: 10}, widget.Vec2{X: 100, Y: 50})

	tests := []struct {
		in, want widget.Vec2
	}{
		{widget.Vec2{X: 5, Y: 5}, widget.Vec2{X: 10, Y: 10}},
		{widget.Vec2{X: 50, Y: 25}, widget.Vec2{X: 50, Y: 25}},
		{widget.Vec2{X: 500, Y: 500}, widget.Vec2{X: 100, Y: 50}},
	}
	for _, tt := range tests {
		if got := limits.Constrain(tt.in); got != tt.want {
			t.Errorf("Constrain(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLimitsUnbounded(t *testing.T) {
	limits := widget.Unbounded()
	if limits.MaxWidth() != widget.Unconstrained || limits.MaxHeight() != widget.Unconstrained {
		t.Errorf("Unbounded() max = %v, want unconstrained axes", limits.Max)
	}
	if limits.Min != (widget.Vec2{}) {
		t.Errorf("Unbounded() min = %v, want zero", limits.Min)
	}
}

func TestNodeMoveTo(t *testing.T) {
	node := widget.NewNode(widget.Vec2{X: 30, Y: 20})
	node.MoveTo(widget.Vec2{X: 5, Y: 7})

	want := widget.Rect{X: 5, Y: 7, W: 30, H: 20}
	if node.Bounds != want {
		t.Errorf("bounds = %v, want %v", node.Bounds, want)
	}
	if got := node.Size(); got != (widget.Vec2{X: 30, Y: 20}) {
		t.Errorf("size = %v, want (30,20)", got)
	}
}

func TestNodeWithChildren(t *testing.T) {
	children := []widget.Node{
		widget.NewNode(widget.Vec2{X: 10, Y: 10}),
		widget.NewNode(widget.Vec2{X: 20, Y: 10}),
	}
	node := widget.NewNodeWithChildren(widget.Vec2{X: 30, Y: 10}, children)

	if len(node.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(node.Children))
	}
	if got := node.Size(); got != (widget.Vec2{X: 30, Y: 10}) {
		t.Errorf("size = %v, want (30,10)", got)
	}
}
