package widget

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// Modifiers holds the modifier keys held during a key event.
type Modifiers struct {
	Ctrl  bool
	Shift bool
	Alt   bool
	Super bool
}

// Event is a single input event delivered to the widget tree. Containers
// forward events to their children unchanged; the cursor position travels
// alongside the event so children can hit-test against their own layout.
type Event interface {
	isEvent()
}

// MouseMoved reports a cursor position change.
type MouseMoved struct {
	Pos Vec2
}

// MousePressed reports a mouse button press.
type MousePressed struct {
	Button MouseButton
}

// MouseReleased reports a mouse button release.
type MouseReleased struct {
	Button MouseButton
}

// MouseScrolled reports scroll wheel movement.
type MouseScrolled struct {
	Delta Vec2
}

// KeyPressed reports a keyboard key press.
type KeyPressed struct {
	Key  Key
	Mods Modifiers
}

// KeyReleased reports a keyboard key release.
type KeyReleased struct {
	Key  Key
	Mods Modifiers
}

// TextEntered reports a Unicode character typed by the user.
type TextEntered struct {
	Char rune
}

// WindowResized reports a change of the host viewport size.
type WindowResized struct {
	Size Vec2
}

func (MouseMoved) isEvent()    {}
func (MousePressed) isEvent()  {}
func (MouseReleased) isEvent() {}
func (MouseScrolled) isEvent() {}
func (KeyPressed) isEvent()    {}
func (KeyReleased) isEvent()   {}
func (TextEntered) isEvent()   {}
func (WindowResized) isEvent() {}

// Status reports whether an element consumed an event. Capturing does not
// stop propagation; it only informs the host that something reacted.
type Status uint8

const (
	// StatusIgnored means the event was not consumed.
	StatusIgnored Status = iota
	// StatusCaptured means the event was consumed by an element.
	StatusCaptured
)

// Merge combines two statuses: the result is captured if either side
// captured. The merge is associative and order-independent, so containers
// can fold it over their children in any order.
func (s Status) Merge(other Status) Status {
	if s == StatusCaptured || other == StatusCaptured {
		return StatusCaptured
	}
	return StatusIgnored
}

// String returns the status name for test output and logging.
func (s Status) String() string {
	if s == StatusCaptured {
		return "captured"
	}
	return "ignored"
}
