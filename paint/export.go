package paint

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/nyxui/nyx"
)

// StatusTTL is how long a status line stays visible.
const StatusTTL = 3 * time.Second

// StatusSaveError is shown when saving fails.
const StatusSaveError = "Error saving image"

// Downloader stores saved images when no Exporter is configured.
type Downloader interface {
	Download(name string, data []byte) error
}

// DirDownloader writes downloads into a directory.
type DirDownloader struct {
	Dir string
}

// Download implements Downloader.
func (d DirDownloader) Download(name string, data []byte) error {
	path := filepath.Join(d.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("paint: download %s: %w", name, err)
	}
	return nil
}

// Export writes the bitmap to w as PNG.
func (c *Canvas) Export(w io.Writer) error {
	if !c.lock() {
		return ErrClosed
	}
	img := cloneRGBA(c.img)
	c.mu.Unlock()

	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("paint: encode png: %w", err)
	}
	return nil
}

// Save exports the bitmap as "{document}_{n}.png" and hands it to the
// Exporter, or to the Downloader when none is set. n counts successful
// saves from 0. Failures are reported through Status, never returned.
func (c *Canvas) Save() {
	if !c.lock() {
		return
	}
	img := cloneRGBA(c.img)
	name := fmt.Sprintf("%s_%d.png", DocumentName(c.title), c.saves)
	exporter, downloader := c.exporter, c.downloader
	c.mu.Unlock()

	err := deliver(name, img, exporter, downloader)

	if !c.lock() {
		return
	}
	defer c.mu.Unlock()
	if err != nil {
		nyx.Logger().Warn("paint: save failed", "name", name, "err", err)
		c.setStatusLocked(StatusSaveError)
		return
	}
	c.saves++
	c.setStatusLocked("Saved " + name)
	nyx.Logger().Debug("paint: saved", "name", name)
}

func deliver(name string, img image.Image, exporter Exporter, downloader Downloader) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("paint: encode png: %w", err)
	}
	if exporter != nil {
		return exporter(name, buf.Bytes())
	}
	return downloader.Download(name, buf.Bytes())
}

// Saves returns the number of successful saves.
func (c *Canvas) Saves() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

// Status returns the current status line, or "" once it has expired.
func (c *Canvas) Status() string {
	if c == nil {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.status == "" || c.now().Sub(c.statusAt) >= StatusTTL {
		return ""
	}
	return c.status
}

func (c *Canvas) setStatusLocked(s string) {
	c.status = s
	c.statusAt = c.now()
}

// DocumentName derives the file name stem from a window title: the part
// before the last " - ", with accents and path separators removed.
// An empty result becomes "untitled".
func DocumentName(title string) string {
	if i := strings.LastIndex(title, " - "); i >= 0 {
		title = title[:i]
	}
	stripMarks := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	name, _, err := transform.String(stripMarks, title)
	if err != nil {
		name = title
	}
	name = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == filepath.Separator || unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." {
		return "untitled"
	}
	return name
}
