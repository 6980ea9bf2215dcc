package widget

// Renderer is the backend contract elements see during layout and drawing.
// Concrete backends (see backend/opengl) also implement the per-container
// draw interfaces such as GridRenderer.
type Renderer interface {
	// MeasureText returns the pixel size of a single line of text.
	MeasureText(text string) Vec2

	// DrawList returns the primitive sink for the frame being drawn.
	// Only valid during a draw pass.
	DrawList() *DrawList

	// Resize notifies the backend of a viewport size change.
	Resize(width, height int)
}

// Element is the interface implemented by every widget in the tree.
// Containers hold their children as Elements without knowing concrete
// types; all dispatch is dynamic.
type Element interface {
	// Layout computes the element's layout tree for the given constraints.
	// The returned node is positioned at the origin; the parent moves it.
	Layout(r Renderer, limits Limits) Node

	// OnEvent processes an input event. The layout node is the one this
	// element produced in the preceding layout pass; cursor is the pointer
	// position in the same coordinate space. Emitted application messages
	// go on the queue. The returned status reports whether the event was
	// consumed; returning StatusCaptured does not stop propagation.
	OnEvent(ev Event, layout Node, cursor Vec2, r Renderer, clipboard ClipboardProvider, q *MessageQueue) Status

	// Draw renders the element into the renderer's draw list. The style
	// carries inherited defaults; viewport is the visible clipping region.
	Draw(r Renderer, style *Style, layout Node, cursor Vec2, viewport Rect)

	// HashLayout feeds everything that affects the element's layout into
	// the structural hasher.
	HashLayout(h *Hasher)
}
