// Package gallery loads the images placed on the grid and keeps thumbnails
// scaled to the current cell size.
package gallery

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// LoadedMsg carries the outcome of an asynchronous image load.
type LoadedMsg struct {
	Ref string
	Img image.Image
	Err error
}

// Thumb is a square RGB24 rendition of an image, Size pixels on a side.
type Thumb struct {
	Size int
	Pix  []byte
}

// At returns the RGB triplet at (x, y).
func (t *Thumb) At(x, y int) (uint8, uint8, uint8) {
	off := (y*t.Size + x) * 3
	return t.Pix[off], t.Pix[off+1], t.Pix[off+2]
}

// Gallery caches decoded images by ref. It is only mutated from the host's
// update loop; decoding itself happens in commands.
type Gallery struct {
	images  map[string]image.Image
	failed  map[string]error
	pending map[string]bool

	thumbSize int
	thumbs    map[string]*Thumb
}

// New creates an empty gallery.
func New() *Gallery {
	return &Gallery{
		images:  make(map[string]image.Image),
		failed:  make(map[string]error),
		pending: make(map[string]bool),
		thumbs:  make(map[string]*Thumb),
	}
}

// Decode produces the image for ref: a generated swatch or a file on disk.
func Decode(ref string) (image.Image, error) {
	if IsSwatch(ref) {
		return swatch(ref)
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", ref, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", ref, err)
	}
	return img, nil
}

// LoadCmd decodes ref in the background.
func LoadCmd(ref string) tea.Cmd {
	return func() tea.Msg {
		img, err := Decode(ref)
		return LoadedMsg{Ref: ref, Img: img, Err: err}
	}
}

// LoadAll starts loading every ref the gallery has not seen yet.
func (g *Gallery) LoadAll(refs []string) tea.Cmd {
	var cmds []tea.Cmd
	for _, ref := range refs {
		if ref == "" || g.known(ref) {
			continue
		}
		g.pending[ref] = true
		cmds = append(cmds, LoadCmd(ref))
	}
	return tea.Batch(cmds...)
}

// Load decodes ref synchronously.
func (g *Gallery) Load(ref string) error {
	if g.known(ref) && !g.pending[ref] {
		return g.failed[ref]
	}
	img, err := Decode(ref)
	g.Update(LoadedMsg{Ref: ref, Img: img, Err: err})
	return err
}

// Update stores the result of a LoadedMsg. It reports whether msg was one.
// Failed loads are logged and otherwise ignored; the ref simply never draws.
func (g *Gallery) Update(msg tea.Msg) bool {
	loaded, ok := msg.(LoadedMsg)
	if !ok {
		return false
	}
	delete(g.pending, loaded.Ref)
	if loaded.Err != nil || loaded.Img == nil {
		if loaded.Err == nil {
			loaded.Err = fmt.Errorf("no image")
		}
		log.Printf("gallery: load %s: %v", loaded.Ref, loaded.Err)
		g.failed[loaded.Ref] = loaded.Err
		return true
	}
	g.images[loaded.Ref] = loaded.Img
	delete(g.thumbs, loaded.Ref)
	return true
}

func (g *Gallery) known(ref string) bool {
	if g.pending[ref] {
		return true
	}
	if _, ok := g.images[ref]; ok {
		return true
	}
	_, ok := g.failed[ref]
	return ok
}

// Image returns the decoded image for ref, or nil.
func (g *Gallery) Image(ref string) image.Image {
	return g.images[ref]
}

// Loaded returns the number of decoded images.
func (g *Gallery) Loaded() int { return len(g.images) }

// Pending returns the number of loads still in flight.
func (g *Gallery) Pending() int { return len(g.pending) }

// Failed returns the number of refs that could not be loaded.
func (g *Gallery) Failed() int { return len(g.failed) }

// Thumb returns ref scaled to px×px pixels, or nil if the image is not
// loaded. Thumbnails are cached until the requested size changes.
func (g *Gallery) Thumb(ref string, px int) *Thumb {
	if px <= 0 {
		return nil
	}
	img, ok := g.images[ref]
	if !ok {
		return nil
	}
	if px != g.thumbSize {
		g.thumbSize = px
		clear(g.thumbs)
	}
	if t, ok := g.thumbs[ref]; ok {
		return t
	}
	t := scale(img, px)
	g.thumbs[ref] = t
	return t
}
