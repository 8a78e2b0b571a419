package gallery

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func writePNG(t *testing.T, path string, c color.RGBA, w, h int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestScanSortsSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	red := color.RGBA{R: 255, A: 255}
	writePNG(t, filepath.Join(dir, "b.png"), red, 2, 2)
	writePNG(t, filepath.Join(dir, "A.PNG"), red, 2, 2)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := Scan(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "A.PNG" || filepath.Base(files[1]) != "b.png" {
		t.Fatalf("unexpected order %v", files)
	}
}

func TestScanEmptyDirFails(t *testing.T) {
	if _, err := Scan(t.TempDir()); err == nil {
		t.Fatal("expected error for directory without images")
	}
}

func TestCycleWrapsIDs(t *testing.T) {
	if Cycle(nil) != nil {
		t.Fatal("expected nil func for empty refs")
	}
	ref := Cycle([]string{"a", "b", "c"})
	for id, want := range map[int]string{1: "b", 3: "a", 5: "c", 169: "b"} {
		if got := ref(id); got != want {
			t.Fatalf("expected %q for id %d, got %q", want, id, got)
		}
	}
}

func TestSwatchesDecode(t *testing.T) {
	refs := Swatches(3)
	if len(refs) != 3 || !IsSwatch(refs[2]) {
		t.Fatalf("unexpected swatch refs %v", refs)
	}
	img, err := Decode(refs[1])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != swatchSize || b.Dy() != swatchSize {
		t.Fatalf("expected %dx%d swatch, got %v", swatchSize, swatchSize, b)
	}
	if _, err := Decode("swatch:nope"); err == nil {
		t.Fatal("expected error for malformed swatch ref")
	}
}

func TestLoadAllDeliversImages(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "one.png")
	writePNG(t, path, color.RGBA{G: 200, A: 255}, 4, 4)

	g := New()
	refs := []string{path, path, "swatch:0", filepath.Join(dir, "missing.png"), ""}
	cmd := g.LoadAll(refs)
	if g.Pending() != 3 {
		t.Fatalf("expected 3 pending loads, got %d", g.Pending())
	}
	for _, msg := range drain(cmd) {
		if !g.Update(msg) {
			t.Fatalf("expected LoadedMsg, got %T", msg)
		}
	}
	if g.Pending() != 0 || g.Loaded() != 2 || g.Failed() != 1 {
		t.Fatalf("unexpected counts pending=%d loaded=%d failed=%d", g.Pending(), g.Loaded(), g.Failed())
	}
	if g.Image(path) == nil {
		t.Fatal("expected image to be cached")
	}
	if cmd := g.LoadAll(refs); cmd != nil {
		t.Fatal("expected no reload of known refs")
	}
}

func TestUpdateIgnoresOtherMessages(t *testing.T) {
	if New().Update(tea.KeyMsg{}) {
		t.Fatal("expected non-load message to be ignored")
	}
}

func TestLoadRemembersFailure(t *testing.T) {
	g := New()
	err := g.Load(filepath.Join(t.TempDir(), "gone.jpg"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if err2 := g.Load(filepath.Join("does", "not", "matter")); err2 == nil {
		t.Fatal("expected error for missing file")
	}
	if g.Failed() != 2 {
		t.Fatalf("expected 2 failures, got %d", g.Failed())
	}
}

func TestThumbScalesAndCaches(t *testing.T) {
	g := New()
	g.Update(LoadedMsg{Ref: "solid", Img: solid(color.RGBA{R: 10, G: 20, B: 30, A: 255}, 9, 5)})

	if g.Thumb("missing", 4) != nil {
		t.Fatal("expected nil thumb for unknown ref")
	}
	if g.Thumb("solid", 0) != nil {
		t.Fatal("expected nil thumb for zero size")
	}

	th := g.Thumb("solid", 4)
	if th == nil || th.Size != 4 || len(th.Pix) != 4*4*3 {
		t.Fatalf("unexpected thumb %+v", th)
	}
	r, gg, b := th.At(3, 3)
	if r != 10 || gg != 20 || b != 30 {
		t.Fatalf("expected (10, 20, 30), got (%d, %d, %d)", r, gg, b)
	}
	if g.Thumb("solid", 4) != th {
		t.Fatal("expected cached thumb")
	}
	if g.Thumb("solid", 6) == th {
		t.Fatal("expected new thumb after size change")
	}
}

func TestScaleAveragesBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, color.RGBA{R: 200, A: 255})
	img.SetRGBA(1, 0, color.RGBA{B: 100, A: 255})

	th := scale(img, 1)
	r, g, b := th.At(0, 0)
	if r != 100 || g != 0 || b != 50 {
		t.Fatalf("expected averaged (100, 0, 50), got (%d, %d, %d)", r, g, b)
	}
}

func TestDecodeReportsBadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Decode(path)
	if err == nil {
		t.Fatal("expected decode error")
	}
	if errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestDecodeWrapsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")
	_, err := Decode(path)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error to name %s, got %v", path, err)
	}
}

func solid(c color.RGBA, w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
