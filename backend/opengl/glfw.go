package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widget"
)

// EventAdapter translates GLFW callbacks into widget events.
type EventAdapter struct {
	window *glfw.Window
	events []widget.Event
	cursor widget.Vec2
}

// NewEventAdapter creates a new GLFW event adapter and installs its
// callbacks on the window.
func NewEventAdapter(window *glfw.Window) *EventAdapter {
	adapter := &EventAdapter{
		window: window,
		events: make([]widget.Event, 0, 16),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)
	window.SetSizeCallback(adapter.sizeCallback)

	return adapter
}

// Drain returns the events collected since the last call and clears the
// queue. Call after glfw.PollEvents each frame.
func (a *EventAdapter) Drain() []widget.Event {
	events := a.events
	a.events = make([]widget.Event, 0, cap(events))
	return events
}

// Cursor returns the last reported cursor position.
func (a *EventAdapter) Cursor() widget.Vec2 {
	return a.cursor
}

func (a *EventAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	widgetKey := glfwKeyToWidgetKey(key)
	if widgetKey == widget.KeyNone {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.events = append(a.events, widget.KeyPressed{Key: widgetKey, Mods: glfwModsToWidget(mods)})
	case glfw.Release:
		a.events = append(a.events, widget.KeyReleased{Key: widgetKey, Mods: glfwModsToWidget(mods)})
	}
}

func (a *EventAdapter) charCallback(w *glfw.Window, char rune) {
	a.events = append(a.events, widget.TextEntered{Char: char})
}

func (a *EventAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	widgetButton := glfwMouseButtonToWidget(button)
	if widgetButton < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.events = append(a.events, widget.MousePressed{Button: widgetButton})
	case glfw.Release:
		a.events = append(a.events, widget.MouseReleased{Button: widgetButton})
	}
}

func (a *EventAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.events = append(a.events, widget.MouseScrolled{Delta: widget.Vec2{X: float32(xoff), Y: float32(yoff)}})
}

func (a *EventAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.cursor = widget.Vec2{X: float32(xpos), Y: float32(ypos)}
	a.events = append(a.events, widget.MouseMoved{Pos: a.cursor})
}

func (a *EventAdapter) sizeCallback(w *glfw.Window, width, height int) {
	a.events = append(a.events, widget.WindowResized{Size: widget.Vec2{X: float32(width), Y: float32(height)}})
}

// Clipboard implements widget.ClipboardProvider over the GLFW window
// clipboard.
type Clipboard struct {
	window *glfw.Window
}

// NewClipboard creates a clipboard provider for the window.
func NewClipboard(window *glfw.Window) *Clipboard {
	return &Clipboard{window: window}
}

// GetText implements widget.ClipboardProvider.
func (c *Clipboard) GetText() string {
	return c.window.GetClipboardString()
}

// SetText implements widget.ClipboardProvider.
func (c *Clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}

// glfwKeyToWidgetKey maps GLFW keys to widget keys.
func glfwKeyToWidgetKey(key glfw.Key) widget.Key {
	switch key {
	case glfw.KeyTab:
		return widget.KeyTab
	case glfw.KeyLeft:
		return widget.KeyLeft
	case glfw.KeyRight:
		return widget.KeyRight
	case glfw.KeyUp:
		return widget.KeyUp
	case glfw.KeyDown:
		return widget.KeyDown
	case glfw.KeyPageUp:
		return widget.KeyPageUp
	case glfw.KeyPageDown:
		return widget.KeyPageDown
	case glfw.KeyHome:
		return widget.KeyHome
	case glfw.KeyEnd:
		return widget.KeyEnd
	case glfw.KeyInsert:
		return widget.KeyInsert
	case glfw.KeyDelete:
		return widget.KeyDelete
	case glfw.KeyBackspace:
		return widget.KeyBackspace
	case glfw.KeySpace:
		return widget.KeySpace
	case glfw.KeyEnter:
		return widget.KeyEnter
	case glfw.KeyEscape:
		return widget.KeyEscape
	default:
		return widget.KeyNone
	}
}

// glfwModsToWidget maps GLFW modifier flags to widget modifiers.
func glfwModsToWidget(mods glfw.ModifierKey) widget.Modifiers {
	return widget.Modifiers{
		Ctrl:  mods&glfw.ModControl != 0,
		Shift: mods&glfw.ModShift != 0,
		Alt:   mods&glfw.ModAlt != 0,
		Super: mods&glfw.ModSuper != 0,
	}
}

// glfwMouseButtonToWidget maps GLFW mouse buttons to widget mouse buttons.
func glfwMouseButtonToWidget(button glfw.MouseButton) widget.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return widget.MouseButtonLeft
	case glfw.MouseButtonRight:
		return widget.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return widget.MouseButtonMiddle
	default:
		return -1
	}
}
