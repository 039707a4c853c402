package paint

import (
	"errors"
	"testing"

	"github.com/nyxui/nyx"
)

func TestWindowLayout(t *testing.T) {
	c := NewCanvas(WithSize(400, 300), WithDisplaySize(200, 150))
	c.SetColor(nyx.Black)
	c.StartStroke(nyx.Pt(0, 75))
	c.ContinueStroke(nyx.Pt(200, 75))
	c.EndStroke()

	win := c.Window()
	wantW := 200 + 2*windowBorder
	wantH := titleBarH + 150 + statusBarH + 2*windowBorder
	if b := win.Bounds(); b.Dx() != wantW || b.Dy() != wantH {
		t.Fatalf("window = %v, want %dx%d", b, wantW, wantH)
	}

	if got := win.RGBAAt(wantW-windowBorder-2, windowBorder+2); got != titleBlue {
		t.Errorf("title bar = %+v, want %+v", got, titleBlue)
	}
	if got := win.RGBAAt(0, 0); got != chromeGray {
		t.Errorf("border = %+v, want chrome gray", got)
	}

	canvasTop := windowBorder + titleBarH
	if got := win.RGBAAt(100, canvasTop+75); got.R > 64 {
		t.Errorf("scaled stroke = %+v, want dark", got)
	}
	if got := win.RGBAAt(100, canvasTop+20); got.R < 250 || got.G < 250 || got.B < 250 {
		t.Errorf("scaled background = %+v, want white", got)
	}
}

func TestWindowDrawsCaption(t *testing.T) {
	c := NewCanvas(WithSize(100, 50))
	win := c.Window()

	white := 0
	for y := windowBorder; y < windowBorder+titleBarH; y++ {
		for x := windowBorder; x < 100; x++ {
			if win.RGBAAt(x, y) == captionWhite {
				white++
			}
		}
	}
	if white == 0 {
		t.Error("title caption not drawn")
	}
}

func TestWindowStatusText(t *testing.T) {
	dl := &recordingDownloader{err: errors.New("nope")}
	c := NewCanvas(WithSize(120, 40), WithDownloader(dl))

	statusTop := windowBorder + titleBarH + 40
	dark := func() int {
		win := c.Window()
		n := 0
		for y := statusTop; y < statusTop+statusBarH; y++ {
			for x := windowBorder; x < 120; x++ {
				if win.RGBAAt(x, y).R < 64 {
					n++
				}
			}
		}
		return n
	}

	idle := dark()
	if idle == 0 {
		t.Fatal("status bar should show the active tool")
	}
	c.Save()
	if dark() == idle {
		t.Error("status bar should change to show the save error")
	}
}
