package paint

import (
	"time"

	"github.com/nyxui/nyx"
)

// Default canvas settings.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultTitle  = "untitled - Paint"
)

// Exporter receives a saved PNG instead of the Downloader.
type Exporter func(name string, png []byte) error

// Option configures a Canvas.
type Option func(*canvasOptions)

type canvasOptions struct {
	width, height int
	displayW      int
	displayH      int
	title         string
	background    nyx.RGBA
	palette       []nyx.RGBA
	exporter      Exporter
	downloader    Downloader
	now           func() time.Time
}

func defaultOptions() canvasOptions {
	return canvasOptions{
		width:      DefaultWidth,
		height:     DefaultHeight,
		title:      DefaultTitle,
		background: nyx.White,
		palette:    ClassicPalette,
		downloader: DirDownloader{Dir: "."},
		now:        time.Now,
	}
}

// WithSize sets the backing bitmap size. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(o *canvasOptions) {
		if width > 0 && height > 0 {
			o.width, o.height = width, height
		}
	}
}

// WithDisplaySize sets the on-screen size pointer coordinates are
// reported in. It defaults to the bitmap size.
func WithDisplaySize(width, height int) Option {
	return func(o *canvasOptions) {
		if width > 0 && height > 0 {
			o.displayW, o.displayH = width, height
		}
	}
}

// WithTitle sets the window title. Saved files are named after the part
// before the last " - ".
func WithTitle(title string) Option {
	return func(o *canvasOptions) {
		o.title = title
	}
}

// WithBackground sets the background color used by Clear and the eraser.
func WithBackground(c nyx.RGBA) Option {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// WithPalette replaces the classic palette.
func WithPalette(colors ...nyx.RGBA) Option {
	return func(o *canvasOptions) {
		if len(colors) > 0 {
			o.palette = colors
		}
	}
}

// WithExporter redirects saved images to fn instead of the Downloader.
func WithExporter(fn Exporter) Option {
	return func(o *canvasOptions) {
		o.exporter = fn
	}
}

// WithDownloader sets where saved images go when no Exporter is set.
func WithDownloader(d Downloader) Option {
	return func(o *canvasOptions) {
		if d != nil {
			o.downloader = d
		}
	}
}

// WithClock sets the time source for status expiry.
func WithClock(now func() time.Time) Option {
	return func(o *canvasOptions) {
		if now != nil {
			o.now = now
		}
	}
}
