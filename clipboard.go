package widget

// ClipboardProvider abstracts system clipboard access. The host hands a
// provider into each event pass so elements can cut and paste without
// knowing the platform.
//
// For GLFW:
//
//	type GLFWClipboard struct {
//	    window *glfw.Window
//	}
//
//	func (c *GLFWClipboard) GetText() string {
//	    return c.window.GetClipboardString()
//	}
//
//	func (c *GLFWClipboard) SetText(text string) {
//	    c.window.SetClipboardString(text)
//	}
type ClipboardProvider interface {
	// GetText retrieves text from the system clipboard.
	// Returns empty string if clipboard is empty or contains non-text data.
	GetText() string

	// SetText copies text to the system clipboard.
	SetText(text string)
}

// NopClipboard is a ClipboardProvider that holds nothing. It is used when
// no platform clipboard is configured, and in tests.
type NopClipboard struct{}

// GetText implements ClipboardProvider.
func (NopClipboard) GetText() string { return "" }

// SetText implements ClipboardProvider.
func (NopClipboard) SetText(text string) {}
