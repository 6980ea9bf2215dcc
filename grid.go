package widget

import "math"

// Grid is a container that distributes its children in a grid.
//
// Usage:
//
//	grid := widget.NewGridWithColumns(2).
//	    Push(first).
//	    Push(second).
//	    Push(third).
//	    Push(fourth)
//
// Children are placed in row-major order: element i lands in column
// i%columns and a new row starts every time the column index wraps to 0.
type Grid struct {
	strategy strategy
	elements []Element
}

// strategy describes how the grid's columns are distributed.
type strategy struct {
	kind        strategyKind
	columns     int     // strategyColumns: fixed column count
	columnWidth float32 // strategyColumnWidth: fixed column width
}

type strategyKind uint8

const (
	// strategyColumns uses a fixed number of columns.
	strategyColumns strategyKind = iota
	// strategyColumnWidth fits as many fixed-width columns as the
	// available width allows.
	strategyColumnWidth
)

// defaultStrategy is used for grids created through the widget registry.
func defaultStrategy() strategy {
	return strategy{kind: strategyColumns, columns: 1}
}

// NewGridWithColumns creates an empty grid that lays its elements out in
// a fixed number of columns. A column count of 0 yields a zero-size
// layout that silently drops all elements.
func NewGridWithColumns(columns int) *Grid {
	return &Grid{strategy: strategy{kind: strategyColumns, columns: columns}}
}

// NewGridWithColumnWidth creates an empty grid that generates as many
// fixed-width columns as fit the available width.
func NewGridWithColumnWidth(columnWidth float32) *Grid {
	return &Grid{strategy: strategy{kind: strategyColumnWidth, columnWidth: columnWidth}}
}

// Push appends an element and returns the grid for chaining.
func (g *Grid) Push(element Element) *Grid {
	g.elements = append(g.elements, element)
	return g
}

// Insert appends an element in place.
func (g *Grid) Insert(element Element) {
	g.elements = append(g.elements, element)
}

// Layout computes the grid's layout tree for the given constraints.
//
// With a fixed column count every element is measured against the caller's
// limits and each column is as wide as its widest cell. With a fixed
// column width every element is measured at exactly that width and column
// offsets are uniform multiples of it, regardless of measured content.
func (g *Grid) Layout(r Renderer, limits Limits) Node {
	if len(g.elements) == 0 {
		return NewNode(Vec2{})
	}

	switch g.strategy.kind {
	case strategyColumns:
		// Find out how wide a column is by finding the widest cell in it.
		columns := g.strategy.columns
		if columns == 0 {
			return NewNode(Vec2{})
		}

		sizes := make([]Vec2, 0, len(g.elements))
		columnWidths := make([]float32, 0, columns)

		for i, element := range g.elements {
			size := element.Layout(r, limits).Size()
			sizes = append(sizes, size)

			// Columns are touched in cycling order, so the widths slice
			// only ever grows by one at its end.
			if column := i % columns; column < len(columnWidths) {
				columnWidths[column] = maxf(columnWidths[column], size.X)
			} else {
				columnWidths = append(columnWidths, size.X)
			}
		}

		offsets := make([]float32, len(columnWidths))
		gridWidth := float32(0)
		for column, width := range columnWidths {
			offsets[column] = gridWidth
			gridWidth += width
		}

		return buildGrid(columns, offsets, sizes, gridWidth)

	default:
		// Find the number of columns by checking how many fit.
		columnWidth := g.strategy.columnWidth
		columns := 0
		if columnWidth > 0 {
			ratio := limits.MaxWidth() / columnWidth
			if math.IsInf(float64(ratio), 1) {
				// Unbounded width fits every element on one row.
				columns = len(g.elements)
			} else {
				columns = int(ratio)
			}
		}
		if columns == 0 {
			return NewNode(Vec2{})
		}

		columnLimits := limits.WithWidth(columnWidth)
		sizes := make([]Vec2, 0, len(g.elements))
		for _, element := range g.elements {
			sizes = append(sizes, element.Layout(r, columnLimits).Size())
		}

		offsets := make([]float32, min(columns, len(g.elements)))
		for column := range offsets {
			offsets[column] = float32(column) * columnWidth
		}

		return buildGrid(columns, offsets, sizes, float32(columns)*columnWidth)
	}
}

// buildGrid places one node per measured child, cycling through columns
// in row-major order. offsets holds the horizontal offset of every
// touched column; row heights accumulate into the grid height, including
// the final partial row.
func buildGrid(columns int, offsets []float32, sizes []Vec2, gridWidth float32) Node {
	nodes := make([]Node, 0, len(sizes))
	gridHeight := float32(0)
	rowHeight := float32(0)

	for i, size := range sizes {
		column := i % columns
		if column == 0 && i > 0 {
			gridHeight += rowHeight
			rowHeight = 0
		}

		node := NewNode(size)
		node.MoveTo(Vec2{X: offsets[column], Y: gridHeight})
		nodes = append(nodes, node)
		rowHeight = maxf(rowHeight, size.Y)
	}

	gridHeight += rowHeight

	return NewNodeWithChildren(Vec2{X: gridWidth, Y: gridHeight}, nodes)
}

// OnEvent forwards the event to every child in order, pairing each child
// with its layout node from the preceding layout pass. Every child sees
// the event even after an earlier child captures it; the per-child
// statuses are merged with the any-captured rule.
func (g *Grid) OnEvent(ev Event, layout Node, cursor Vec2, r Renderer, clipboard ClipboardProvider, q *MessageQueue) Status {
	status := StatusIgnored
	for i, element := range g.elements {
		if i >= len(layout.Children) {
			break
		}
		status = status.Merge(element.OnEvent(ev, layout.Children[i], cursor, r, clipboard, q))
	}
	return status
}

// Draw delegates to the renderer's grid entry point. The grid itself
// draws nothing decorative. Renderers that do not implement GridRenderer
// behave like NullRenderer and draw nothing.
func (g *Grid) Draw(r Renderer, style *Style, layout Node, cursor Vec2, viewport Rect) {
	if gr, ok := r.(GridRenderer); ok {
		gr.DrawGrid(style, layout, cursor, viewport, g.elements)
	}
}

// gridHashMarker distinguishes Grid nodes from other element kinds in the
// structural hash.
const gridHashMarker = "widget.Grid"

// HashLayout contributes the grid's type marker followed by each child's
// own hash, in order.
func (g *Grid) HashLayout(h *Hasher) {
	h.WriteString(gridHashMarker)
	for _, element := range g.elements {
		element.HashLayout(h)
	}
}

// GridRenderer is implemented by renderers that can draw a Grid.
//
// A backend must implement this interface before Grid containers can be
// drawn through it. In addition to the inherited defaults, the layout and
// the clipping viewport, it receives the ordered list of elements so it
// can pair each one with its layout node.
type GridRenderer interface {
	Renderer

	// DrawGrid draws the grid's elements against their layout nodes.
	DrawGrid(style *Style, layout Node, cursor Vec2, viewport Rect, elements []Element)
}
