/*
Package widget provides a retained-mode widget toolkit built around a grid
container, designed as idiomatic Go with explicit layout, event and draw
passes.

# Overview

The toolkit keeps a tree of elements between frames. Each frame the host
asks for a layout pass, forwards input events against the computed layout,
and runs a draw pass; elements never redraw themselves spontaneously. A
structural hash over the tree lets the host reuse the previous layout when
nothing changed.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(800, 600)
	ui := widget.New(renderer, widget.WithStyle(widget.DefaultStyle()))

	grid := widget.NewGridWithColumns(2).
	    Push(first).
	    Push(second).
	    Push(third).
	    Push(fourth)
	ui.SetRoot(grid)

	// Frame loop
	for !window.ShouldClose() {
	    limits := widget.Unbounded().WithMaxSize(widget.Vec2{X: w, Y: h})
	    ui.Layout(limits)

	    for _, ev := range events.Drain() {
	        ui.Dispatch(ev, cursor)
	    }

	    ui.Draw(cursor, widget.Rect{W: w, H: h})
	    renderer.Flush()
	}

# The Grid Container

Grid distributes its children in rows and columns using one of two
strategies, fixed at construction:

	widget.NewGridWithColumns(n)
	    A fixed number of columns. Each column is as wide as its widest
	    cell; each row is as tall as its tallest cell. n == 0 degenerates
	    to a zero-size layout with no children.

	widget.NewGridWithColumnWidth(w)
	    As many columns of width w as fit the available width. Every child
	    is measured at exactly width w and column offsets are uniform
	    multiples of w, regardless of measured content. If no column fits,
	    the layout degenerates to zero size.

Children are placed in row-major order: element i lands in column
i%columns, and a new row starts every time the column index wraps to 0.
Elements are appended with Push (chaining) or Insert (in place); there is
no removal or reordering.

Events are forwarded to every child in order. A child capturing an event
does not stop later children from seeing it; the grid reports captured if
any child captured.

# Elements

Custom widgets implement the Element interface:

	type Element interface {
	    Layout(r Renderer, limits Limits) Node
	    OnEvent(ev Event, layout Node, cursor Vec2, r Renderer,
	        clipboard ClipboardProvider, q *MessageQueue) Status
	    Draw(r Renderer, style *Style, layout Node, cursor Vec2, viewport Rect)
	    HashLayout(h *Hasher)
	}

Layout reports the element's natural size against the given limits.
HashLayout must feed everything that affects layout into the hasher, and
nothing else.

# Renderers

Backends implement Renderer plus the per-container draw interfaces they
support (GridRenderer for grids). The backend/opengl package provides an
OpenGL implementation together with a GLFW input adapter; NullRenderer
draws nothing and serves headless layout passes and tests.

# Widget Registry

Widgets can be constructed by name through the registry:

	widget.RegisterBuiltins()
	factory := widget.GetWidget(widget.WidgetGrid)
	grid := factory()

Custom widgets register with RegisterWidget using the "widget_" prefix.

# Clipboard Integration

To enable clipboard support, implement ClipboardProvider and pass it with
widget.WithClipboard. The backend/opengl package ships a GLFW-backed
provider.
*/
package widget
