package widget_test

import (
	"testing"

	"github.com/go-theft-auto/widget"
)

func TestDrawListAddRect(t *testing.T) {
	dl := widget.AcquireDrawList()
	defer widget.ReleaseDrawList(dl)

	dl.AddRect(widget.Rect{X: 10, Y: 20, W: 30, H: 40}, widget.ColorRed)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("got %d vertices, want 4", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Errorf("got %d indices, want 6", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 {
		t.Fatalf("got %d commands, want 1", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ElemCount != 6 {
		t.Errorf("ElemCount = %d, want 6", dl.CmdBuffer[0].ElemCount)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := widget.AcquireDrawList()
	defer widget.ReleaseDrawList(dl)

	dl.AddRect(widget.Rect{W: 10, H: 10}, widget.ColorTransparent)
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("transparent rect emitted %d vertices, want 0", len(dl.VtxBuffer))
	}
}

func TestDrawListClipSplitsCommands(t *testing.T) {
	dl := widget.AcquireDrawList()
	defer widget.ReleaseDrawList(dl)

	dl.AddRect(widget.Rect{W: 10, H: 10}, widget.ColorRed)
	dl.PushClipRect(widget.Rect{X: 0, Y: 0, W: 5, H: 5})
	dl.AddRect(widget.Rect{W: 10, H: 10}, widget.ColorGreen)
	dl.PopClipRect()
	dl.Finalize()

	// One command before the clip, one inside it, one after the pop.
	if len(dl.CmdBuffer) != 3 {
		t.Fatalf("got %d commands, want 3", len(dl.CmdBuffer))
	}
	clipped := dl.CmdBuffer[1]
	want := [4]float32{0, 0, 5, 5}
	if clipped.ClipRect != want {
		t.Errorf("clip rect = %v, want %v", clipped.ClipRect, want)
	}
}

func TestDrawListClearRetainsNothing(t *testing.T) {
	dl := widget.AcquireDrawList()
	defer widget.ReleaseDrawList(dl)

	dl.AddRect(widget.Rect{W: 10, H: 10}, widget.ColorRed)
	dl.Clear()

	if len(dl.VtxBuffer) != 0 || len(dl.IdxBuffer) != 0 || len(dl.CmdBuffer) != 0 {
		t.Error("Clear left buffered data behind")
	}
}
