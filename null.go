package widget

// NullRenderer is a renderer that renders nothing. It is useful for
// headless layout passes and tests.
type NullRenderer struct {
	dl *DrawList
}

// MeasureText implements Renderer. Text has no extent without a backend.
func (n *NullRenderer) MeasureText(text string) Vec2 {
	return Vec2{}
}

// DrawList implements Renderer. The list accumulates primitives but is
// never uploaded anywhere.
func (n *NullRenderer) DrawList() *DrawList {
	if n.dl == nil {
		n.dl = AcquireDrawList()
	}
	return n.dl
}

// Resize implements Renderer.
func (n *NullRenderer) Resize(width, height int) {}

// DrawGrid implements GridRenderer by drawing nothing.
func (n *NullRenderer) DrawGrid(style *Style, layout Node, cursor Vec2, viewport Rect, elements []Element) {
}
