package gallery

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/folio/internal/content"
	"github.com/marcus/folio/internal/showcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG writes a small two-colour PNG into dir.
func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := color.RGBA{R: 0xe0, G: 0x40, B: 0x40, A: 0xff}
			if y >= 4 {
				c = color.RGBA{R: 0x40, G: 0x40, B: 0xe0, A: 0xff}
			}
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestRenderImage_LocalPNG(t *testing.T) {
	path := writePNG(t, t.TempDir(), "shot.png")

	out, err := renderImage(path, 16, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, ansi.Strip(out))
}

func TestImages_RendersLocalFiles(t *testing.T) {
	dir := t.TempDir()
	abs := writePNG(t, dir, "shot.png")

	im := NewImages(dir)
	calls := 0
	im.renderFn = func(path string, w, h int) (string, error) {
		calls++
		assert.Equal(t, abs, path)
		return "pixels", nil
	}

	for _, url := range []string{"shot.png", abs, "file://" + abs} {
		out, ok := im.Render(url, 20, 6)
		require.True(t, ok, url)
		assert.Equal(t, "pixels", out)
	}
	assert.Equal(t, 1, calls, "output is cached per file and size")

	_, ok := im.Render("shot.png", 30, 6)
	assert.True(t, ok)
	assert.Equal(t, 2, calls)
}

func TestImages_SkipsRemoteAndMissing(t *testing.T) {
	dir := t.TempDir()
	im := NewImages(dir)
	im.renderFn = func(string, int, int) (string, error) {
		t.Fatal("nothing here should be decoded")
		return "", nil
	}

	for _, url := range []string{"https://example.com/a.png", "/placeholder.svg", "missing.png", "", "."} {
		_, ok := im.Render(url, 20, 6)
		assert.False(t, ok, url)
	}

	var nilImages *Images
	_, ok := nilImages.Render("a.png", 20, 6)
	assert.False(t, ok)
}

func TestImages_DecodeFailureFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0644))

	im := NewImages(dir)
	calls := 0
	im.renderFn = func(string, int, int) (string, error) {
		calls++
		return "", errors.New("decode failed")
	}

	_, ok := im.Render("broken.png", 20, 6)
	assert.False(t, ok)
	_, ok = im.Render("broken.png", 20, 6)
	assert.False(t, ok)
	assert.Equal(t, 1, calls, "failures are cached too")
}

func TestGallery_ShowsLocalImageInline(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, dir, "shot.png")

	g := New(nil)
	g.SetMediaRoot(dir)
	g.images.renderFn = func(string, int, int) (string, error) { return "IMG-CELLS", nil }

	sel := showcase.NewSelector()
	sel.Select(content.Project{
		Title: "Local",
		Media: []content.MediaItem{
			{Kind: content.MediaImage, URL: "shot.png"},
			{Kind: content.MediaImage, URL: "https://example.com/remote.png"},
		},
	})
	g.SetProps(sel.Props())

	out := ansi.Strip(g.View(100, 40))
	assert.Contains(t, out, "IMG-CELLS")
	assert.Contains(t, out, "shot.png")
	assert.NotContains(t, out, "IMAGE", "a drawn image replaces the placeholder card")

	g.HandleKey(keyMsg("right"))
	out = ansi.Strip(g.View(100, 40))
	assert.NotContains(t, out, "IMG-CELLS")
	assert.Contains(t, out, "▣ IMAGE")
	assert.Contains(t, out, "remote.png")
}
