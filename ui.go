package widget

// UI drives a retained widget tree. The host feeds it events and asks for
// layout and draw passes; the UI keeps the computed layout tree cached and
// only recomputes it when the tree's structural hash or the constraints
// change.
type UI struct {
	renderer  Renderer
	style     Style
	clipboard ClipboardProvider
	root      Element
	queue     MessageQueue

	layout      Node
	layoutHash  uint64
	layoutDone  bool
	layoutLimit Limits
}

// UIOption configures a UI instance.
type UIOption func(*UI)

// WithStyle sets the style handed to every draw pass.
func WithStyle(style Style) UIOption {
	return func(u *UI) { u.style = style }
}

// WithClipboard sets the clipboard provider handed to every event pass.
func WithClipboard(cp ClipboardProvider) UIOption {
	return func(u *UI) { u.clipboard = cp }
}

// New creates a UI bound to the given renderer.
func New(renderer Renderer, opts ...UIOption) *UI {
	u := &UI{
		renderer:  renderer,
		style:     DefaultStyle(),
		clipboard: NopClipboard{},
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

// SetRoot replaces the root element. The cached layout stays valid until
// the next Layout call observes a changed structural hash.
func (u *UI) SetRoot(root Element) {
	u.root = root
}

// Layout returns the layout tree for the given constraints, recomputing
// it only when the root's structural hash or the constraints changed
// since the previous pass.
func (u *UI) Layout(limits Limits) Node {
	if u.root == nil {
		return NewNode(Vec2{})
	}

	h := NewHasher()
	u.root.HashLayout(h)
	sum := h.Sum64()

	if u.layoutDone && sum == u.layoutHash && limits == u.layoutLimit {
		return u.layout
	}

	u.layout = u.root.Layout(u.renderer, limits)
	u.layoutHash = sum
	u.layoutLimit = limits
	u.layoutDone = true
	return u.layout
}

// Dispatch forwards an event to the root element against the cached
// layout. Call Layout at least once before dispatching.
func (u *UI) Dispatch(ev Event, cursor Vec2) Status {
	if u.root == nil || !u.layoutDone {
		return StatusIgnored
	}
	return u.root.OnEvent(ev, u.layout, cursor, u.renderer, u.clipboard, &u.queue)
}

// Draw renders the tree against the cached layout.
func (u *UI) Draw(cursor Vec2, viewport Rect) {
	if u.root == nil || !u.layoutDone {
		return
	}
	u.root.Draw(u.renderer, &u.style, u.layout, cursor, viewport)
}

// Messages returns the application messages emitted since the last call
// and empties the queue.
func (u *UI) Messages() []any {
	return u.queue.Drain()
}

// Style returns the current style.
func (u *UI) Style() Style {
	return u.style
}

// SetStyle sets the style.
func (u *UI) SetStyle(style Style) {
	u.style = style
}

// Resize notifies the renderer of a display size change.
func (u *UI) Resize(width, height int) {
	u.renderer.Resize(width, height)
}
