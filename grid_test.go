package widget_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-theft-auto/widget"
)

// sizedElement is a test element with a fixed natural size. It records
// the limits of every layout pass and the events it receives.
type sizedElement struct {
	w, h     float32
	captures bool

	limits []widget.Limits
	events []widget.Event
	draws  int
}

func (e *sizedElement) Layout(r widget.Renderer, limits widget.Limits) widget.Node {
	e.limits = append(e.limits, limits)
	return widget.NewNode(widget.Vec2{X: e.w, Y: e.h})
}

func (e *sizedElement) OnEvent(ev widget.Event, layout widget.Node, cursor widget.Vec2, r widget.Renderer, clipboard widget.ClipboardProvider, q *widget.MessageQueue) widget.Status {
	e.events = append(e.events, ev)
	if e.captures {
		return widget.StatusCaptured
	}
	return widget.StatusIgnored
}

func (e *sizedElement) Draw(r widget.Renderer, style *widget.Style, layout widget.Node, cursor widget.Vec2, viewport widget.Rect) {
	e.draws++
}

func (e *sizedElement) HashLayout(h *widget.Hasher) {
	h.WriteString("test.sized")
	h.WriteFloat32(e.w)
	h.WriteFloat32(e.h)
}

func sized(w, h float32) *sizedElement {
	return &sizedElement{w: w, h: h}
}

func boundedLimits(w, h float32) widget.Limits {
	return widget.Unbounded().WithMaxSize(widget.Vec2{X: w, Y: h})
}

func TestGridEmptyLayout(t *testing.T) {
	renderer := &widget.NullRenderer{}
	limits := boundedLimits(800, 600)

	for name, grid := range map[string]*widget.Grid{
		"columns":      widget.NewGridWithColumns(3),
		"column width": widget.NewGridWithColumnWidth(50),
	} {
		node := grid.Layout(renderer, limits)
		if got := node.Size(); got != (widget.Vec2{}) {
			t.Errorf("%s: empty grid size = %v, want zero", name, got)
		}
		if len(node.Children) != 0 {
			t.Errorf("%s: empty grid has %d children, want 0", name, len(node.Children))
		}
	}
}

func TestGridZeroColumns(t *testing.T) {
	renderer := &widget.NullRenderer{}
	elements := []*sizedElement{sized(10, 5), sized(20, 5), sized(5, 8)}

	grid := widget.NewGridWithColumns(0)
	for _, e := range elements {
		grid.Insert(e)
	}

	// Repeated calls stay degenerate and never lay out the children.
	for i := 0; i < 3; i++ {
		node := grid.Layout(renderer, boundedLimits(800, 600))
		if got := node.Size(); got != (widget.Vec2{}) {
			t.Fatalf("pass %d: size = %v, want zero", i, got)
		}
		if len(node.Children) != 0 {
			t.Fatalf("pass %d: got %d children, want 0", i, len(node.Children))
		}
	}
	for i, e := range elements {
		if len(e.limits) != 0 {
			t.Errorf("element %d was laid out %d times, want 0", i, len(e.limits))
		}
	}
}

func TestGridColumnsPlacement(t *testing.T) {
	renderer := &widget.NullRenderer{}

	// Seven 10x5 children in three columns: three rows, last row partial.
	grid := widget.NewGridWithColumns(3)
	for i := 0; i < 7; i++ {
		grid.Insert(sized(10, 5))
	}

	node := grid.Layout(renderer, boundedLimits(800, 600))

	if got, want := node.Size(), (widget.Vec2{X: 30, Y: 15}); got != want {
		t.Errorf("grid size = %v, want %v", got, want)
	}
	if len(node.Children) != 7 {
		t.Fatalf("got %d children, want 7", len(node.Children))
	}
	for i, child := range node.Children {
		wantPos := widget.Vec2{X: float32(i%3) * 10, Y: float32(i/3) * 5}
		if got := child.Bounds.Pos(); got != wantPos {
			t.Errorf("child %d at %v, want %v", i, got, wantPos)
		}
	}
}

func TestGridColumnsWorkedExample(t *testing.T) {
	renderer := &widget.NullRenderer{}

	grid := widget.NewGridWithColumns(2).
		Push(sized(10, 5)).
		Push(sized(20, 5)).
		Push(sized(5, 8)).
		Push(sized(5, 8))

	node := grid.Layout(renderer, boundedLimits(800, 600))

	want := widget.Node{
		Bounds: widget.Rect{W: 30, H: 13},
		Children: []widget.Node{
			{Bounds: widget.Rect{X: 0, Y: 0, W: 10, H: 5}},
			{Bounds: widget.Rect{X: 10, Y: 0, W: 20, H: 5}},
			{Bounds: widget.Rect{X: 0, Y: 5, W: 5, H: 8}},
			{Bounds: widget.Rect{X: 10, Y: 5, W: 5, H: 8}},
		},
	}
	if diff := cmp.Diff(want, node); diff != "" {
		t.Errorf("layout mismatch (-want +got):\n%s", diff)
	}
}

func TestGridColumnsNaturalSizeKept(t *testing.T) {
	renderer := &widget.NullRenderer{}
	limits := boundedLimits(800, 600)

	// A narrow cell shares a column with a wide one: the column grows but
	// the narrow cell keeps its natural size, left-aligned.
	grid := widget.NewGridWithColumns(1).
		Push(sized(40, 10)).
		Push(sized(10, 10))

	node := grid.Layout(renderer, limits)

	if got, want := node.Children[1].Size(), (widget.Vec2{X: 10, Y: 10}); got != want {
		t.Errorf("narrow child size = %v, want natural %v", got, want)
	}
	if got := node.Children[1].Bounds.X; got != 0 {
		t.Errorf("narrow child x = %v, want 0 (left edge of column)", got)
	}
}

func TestGridColumnsSharedLimits(t *testing.T) {
	renderer := &widget.NullRenderer{}
	limits := boundedLimits(640, 480)

	elements := []*sizedElement{sized(10, 5), sized(20, 5), sized(5, 8)}
	grid := widget.NewGridWithColumns(2)
	for _, e := range elements {
		grid.Insert(e)
	}
	grid.Layout(renderer, limits)

	for i, e := range elements {
		if len(e.limits) != 1 {
			t.Fatalf("element %d laid out %d times, want 1", i, len(e.limits))
		}
		if e.limits[0] != limits {
			t.Errorf("element %d measured against %+v, want caller limits %+v", i, e.limits[0], limits)
		}
	}
}

func TestGridColumnsFewerElementsThanColumns(t *testing.T) {
	renderer := &widget.NullRenderer{}

	// Five columns but only two elements: trailing columns are never
	// touched and contribute nothing to the grid width.
	grid := widget.NewGridWithColumns(5).
		Push(sized(10, 4)).
		Push(sized(20, 6))

	node := grid.Layout(renderer, boundedLimits(800, 600))

	if got, want := node.Size(), (widget.Vec2{X: 30, Y: 6}); got != want {
		t.Errorf("grid size = %v, want %v", got, want)
	}
	wantPos := []widget.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}
	for i, child := range node.Children {
		if got := child.Bounds.Pos(); got != wantPos[i] {
			t.Errorf("child %d at %v, want %v", i, got, wantPos[i])
		}
	}
}

func TestGridColumnWidthMeasuresAtFixedWidth(t *testing.T) {
	renderer := &widget.NullRenderer{}
	limits := boundedLimits(200, 600)

	elements := []*sizedElement{sized(10, 5), sized(80, 5), sized(30, 8)}
	grid := widget.NewGridWithColumnWidth(50)
	for _, e := range elements {
		grid.Insert(e)
	}
	grid.Layout(renderer, limits)

	for i, e := range elements {
		if len(e.limits) != 1 {
			t.Fatalf("element %d laid out %d times, want 1", i, len(e.limits))
		}
		got := e.limits[0]
		if got.Min.X != 50 || got.Max.X != 50 {
			t.Errorf("element %d width bounds [%v, %v], want fixed 50", i, got.Min.X, got.Max.X)
		}
		if got.Max.Y != limits.Max.Y {
			t.Errorf("element %d max height %v, want unchanged %v", i, got.Max.Y, limits.Max.Y)
		}
	}
}

func TestGridColumnWidthOffsets(t *testing.T) {
	renderer := &widget.NullRenderer{}

	// floor(125/50) = 2 columns. Offsets are exact multiples of the
	// column width even though the measured children are narrower.
	grid := widget.NewGridWithColumnWidth(50).
		Push(sized(10, 5)).
		Push(sized(20, 5)).
		Push(sized(30, 8))

	node := grid.Layout(renderer, boundedLimits(125, 600))

	if got, want := node.Size(), (widget.Vec2{X: 100, Y: 13}); got != want {
		t.Errorf("grid size = %v, want %v", got, want)
	}
	want := []widget.Vec2{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 0, Y: 5}}
	if len(node.Children) != len(want) {
		t.Fatalf("got %d children, want %d", len(node.Children), len(want))
	}
	for i, child := range node.Children {
		if got := child.Bounds.Pos(); got != want[i] {
			t.Errorf("child %d at %v, want %v", i, got, want[i])
		}
	}
}

func TestGridColumnWidthNoFit(t *testing.T) {
	renderer := &widget.NullRenderer{}

	tests := []struct {
		name        string
		columnWidth float32
		available   float32
	}{
		{"narrower than one column", 50, 30},
		{"zero column width", 0, 800},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := widget.NewGridWithColumnWidth(tt.columnWidth).
				Push(sized(10, 5)).
				Push(sized(10, 5))

			node := grid.Layout(renderer, boundedLimits(tt.available, 600))
			if got := node.Size(); got != (widget.Vec2{}) {
				t.Errorf("size = %v, want zero", got)
			}
			if len(node.Children) != 0 {
				t.Errorf("got %d children, want 0", len(node.Children))
			}
		})
	}
}

func TestGridEventForwarding(t *testing.T) {
	renderer := &widget.NullRenderer{}
	elements := []*sizedElement{sized(10, 10), sized(10, 10), sized(10, 10)}
	elements[1].captures = true

	grid := widget.NewGridWithColumns(3)
	for _, e := range elements {
		grid.Insert(e)
	}
	layout := grid.Layout(renderer, boundedLimits(800, 600))

	var queue widget.MessageQueue
	ev := widget.MousePressed{Button: widget.MouseButtonLeft}
	status := grid.OnEvent(ev, layout, widget.Vec2{X: 5, Y: 5}, renderer, widget.NopClipboard{}, &queue)

	if status != widget.StatusCaptured {
		t.Errorf("status = %v, want captured", status)
	}
	for i, e := range elements {
		if len(e.events) != 1 {
			t.Errorf("element %d received %d events, want exactly 1", i, len(e.events))
		}
	}
}

func TestGridEventForwardingAllIgnored(t *testing.T) {
	renderer := &widget.NullRenderer{}
	grid := widget.NewGridWithColumns(2).
		Push(sized(10, 10)).
		Push(sized(10, 10))
	layout := grid.Layout(renderer, boundedLimits(800, 600))

	var queue widget.MessageQueue
	status := grid.OnEvent(widget.TextEntered{Char: 'a'}, layout, widget.Vec2{}, renderer, widget.NopClipboard{}, &queue)
	if status != widget.StatusIgnored {
		t.Errorf("status = %v, want ignored", status)
	}
}

func TestGridEventNoShortCircuit(t *testing.T) {
	renderer := &widget.NullRenderer{}
	elements := []*sizedElement{sized(10, 10), sized(10, 10), sized(10, 10)}
	elements[0].captures = true

	grid := widget.NewGridWithColumns(3)
	for _, e := range elements {
		grid.Insert(e)
	}
	layout := grid.Layout(renderer, boundedLimits(800, 600))

	var queue widget.MessageQueue
	grid.OnEvent(widget.MousePressed{Button: widget.MouseButtonLeft}, layout, widget.Vec2{}, renderer, widget.NopClipboard{}, &queue)

	// The first child capturing must not stop delivery to the rest.
	if len(elements[2].events) != 1 {
		t.Errorf("last element received %d events, want 1", len(elements[2].events))
	}
}

func TestGridEventForwardingLayoutMismatch(t *testing.T) {
	renderer := &widget.NullRenderer{}
	elements := []*sizedElement{sized(10, 10), sized(10, 10), sized(10, 10)}

	grid := widget.NewGridWithColumns(3)
	for _, e := range elements {
		grid.Insert(e)
	}
	layout := grid.Layout(renderer, boundedLimits(800, 600))

	// Append another element without re-laying-out: forwarding must stop
	// at the shorter of the two sequences.
	extra := sized(10, 10)
	grid.Insert(extra)

	var queue widget.MessageQueue
	grid.OnEvent(widget.TextEntered{Char: 'x'}, layout, widget.Vec2{}, renderer, widget.NopClipboard{}, &queue)

	for i, e := range elements {
		if len(e.events) != 1 {
			t.Errorf("element %d received %d events, want 1", i, len(e.events))
		}
	}
	if len(extra.events) != 0 {
		t.Errorf("element without a layout node received %d events, want 0", len(extra.events))
	}
}

func TestGridHashLayout(t *testing.T) {
	hashOf := func(g *widget.Grid) uint64 {
		h := widget.NewHasher()
		g.HashLayout(h)
		return h.Sum64()
	}

	grid := widget.NewGridWithColumns(2).
		Push(sized(10, 5)).
		Push(sized(20, 5))

	first := hashOf(grid)
	if second := hashOf(grid); second != first {
		t.Errorf("hash not stable: %x then %x", first, second)
	}

	same := widget.NewGridWithColumns(2).
		Push(sized(10, 5)).
		Push(sized(20, 5))
	if got := hashOf(same); got != first {
		t.Errorf("equal composition hashed differently: %x vs %x", got, first)
	}

	grid.Insert(sized(5, 8))
	if got := hashOf(grid); got == first {
		t.Error("hash unchanged after appending an element")
	}

	resized := widget.NewGridWithColumns(2).
		Push(sized(10, 5)).
		Push(sized(20, 9))
	if got := hashOf(resized); got == first {
		t.Error("hash unchanged for a child with a different size")
	}
}

func TestGridDrawDelegates(t *testing.T) {
	elements := []*sizedElement{sized(10, 10), sized(10, 10)}
	grid := widget.NewGridWithColumns(2)
	for _, e := range elements {
		grid.Insert(e)
	}

	renderer := &recordingGridRenderer{}
	layout := grid.Layout(renderer, boundedLimits(800, 600))

	style := widget.DefaultStyle()
	viewport := widget.Rect{W: 800, H: 600}
	grid.Draw(renderer, &style, layout, widget.Vec2{X: 1, Y: 2}, viewport)

	if renderer.calls != 1 {
		t.Fatalf("DrawGrid called %d times, want 1", renderer.calls)
	}
	if len(renderer.elements) != 2 {
		t.Errorf("DrawGrid received %d elements, want 2", len(renderer.elements))
	}
	if renderer.viewport != viewport {
		t.Errorf("DrawGrid viewport = %v, want %v", renderer.viewport, viewport)
	}
	if renderer.cursor != (widget.Vec2{X: 1, Y: 2}) {
		t.Errorf("DrawGrid cursor = %v, want (1,2)", renderer.cursor)
	}
}

func TestGridDrawWithoutGridRenderer(t *testing.T) {
	grid := widget.NewGridWithColumns(1).Push(sized(10, 10))
	renderer := &bareRenderer{}
	layout := grid.Layout(renderer, boundedLimits(800, 600))

	style := widget.DefaultStyle()
	// Must not panic; a renderer without grid support draws nothing.
	grid.Draw(renderer, &style, layout, widget.Vec2{}, widget.Rect{W: 800, H: 600})
}

// recordingGridRenderer records DrawGrid invocations.
type recordingGridRenderer struct {
	widget.NullRenderer

	calls    int
	elements []widget.Element
	layout   widget.Node
	cursor   widget.Vec2
	viewport widget.Rect
}

func (r *recordingGridRenderer) DrawGrid(style *widget.Style, layout widget.Node, cursor widget.Vec2, viewport widget.Rect, elements []widget.Element) {
	r.calls++
	r.elements = elements
	r.layout = layout
	r.cursor = cursor
	r.viewport = viewport
}

// bareRenderer implements only the base Renderer interface.
type bareRenderer struct{}

func (r *bareRenderer) MeasureText(text string) widget.Vec2 { return widget.Vec2{} }
func (r *bareRenderer) DrawList() *widget.DrawList          { return widget.AcquireDrawList() }
func (r *bareRenderer) Resize(width, height int)            {}
