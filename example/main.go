// Example demonstrates a grid of clickable colored cells.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, initializes the OpenGL widget
// renderer, and renders a four-column grid of cells that report clicks
// through the message queue.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/widget"
	"github.com/go-theft-auto/widget/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "widget example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	// Create the widget renderer (takes initial viewport size) and the
	// GLFW event/clipboard adapters.
	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("widget renderer: %w", err)
	}
	defer renderer.Delete()

	events := opengl.NewEventAdapter(window)
	ui := widget.New(renderer, widget.WithClipboard(opengl.NewClipboard(window)))

	// Build a four-column grid of cells.
	colors := []uint32{
		widget.ColorRed, widget.ColorGreen, widget.ColorBlue,
		widget.ColorYellow, widget.ColorCyan, widget.ColorMagenta,
		widget.ColorGray, widget.ColorLightGray, widget.ColorWhite,
	}
	grid := widget.NewGridWithColumns(4)
	for i, color := range colors {
		grid.Insert(&cell{id: i, size: widget.Vec2{X: 120, Y: 80}, color: color})
	}
	ui.SetRoot(grid)

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		renderer.Resize(w, h)

		viewport := widget.Rect{W: float32(w), H: float32(h)}
		limits := widget.Unbounded().WithMaxSize(viewport.Size())

		ui.Layout(limits)

		for _, ev := range events.Drain() {
			ui.Dispatch(ev, events.Cursor())
		}
		for _, msg := range ui.Messages() {
			if clicked, ok := msg.(cellClicked); ok {
				fmt.Printf("cell %d clicked\n", clicked.ID)
			}
		}

		ui.Draw(events.Cursor(), viewport)

		if err := renderer.Flush(); err != nil {
			return fmt.Errorf("widget render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}

// cellClicked is emitted when a cell is clicked.
type cellClicked struct {
	ID int
}

// cell is a fixed-size colored element that captures clicks.
type cell struct {
	id      int
	size    widget.Vec2
	color   uint32
	hovered bool
}

func (c *cell) Layout(r widget.Renderer, limits widget.Limits) widget.Node {
	return widget.NewNode(limits.Constrain(c.size))
}

func (c *cell) OnEvent(ev widget.Event, layout widget.Node, cursor widget.Vec2, r widget.Renderer, clipboard widget.ClipboardProvider, q *widget.MessageQueue) widget.Status {
	switch ev := ev.(type) {
	case widget.MouseMoved:
		c.hovered = layout.Bounds.Contains(ev.Pos)
	case widget.MousePressed:
		if ev.Button == widget.MouseButtonLeft && layout.Bounds.Contains(cursor) {
			q.Push(cellClicked{ID: c.id})
			return widget.StatusCaptured
		}
	}
	return widget.StatusIgnored
}

func (c *cell) Draw(r widget.Renderer, style *widget.Style, layout widget.Node, cursor widget.Vec2, viewport widget.Rect) {
	dl := r.DrawList()
	dl.AddRect(layout.Bounds, c.color)
	if c.hovered {
		dl.AddRectOutline(layout.Bounds, style.AccentColor, 2)
	}
}

func (c *cell) HashLayout(h *widget.Hasher) {
	h.WriteString("example.cell")
	h.WriteInt(c.id)
	h.WriteFloat32(c.size.X)
	h.WriteFloat32(c.size.Y)
}
