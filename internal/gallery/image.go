package gallery

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/cespare/xxhash/v2"
)

const (
	imageHeight     = 12
	imageCacheLimit = 16
)

// Images renders local image files as half-block text, caching output by
// path, size and modification time. Remote URLs are not fetched.
type Images struct {
	root     string
	cache    map[uint64]string
	renderFn func(path string, width, height int) (string, error)
}

// NewImages returns a renderer resolving relative paths against root.
func NewImages(root string) *Images {
	return &Images{
		root:     root,
		cache:    make(map[uint64]string),
		renderFn: renderImage,
	}
}

// renderImage draws path with half blocks, which compose inside a
// lipgloss frame where graphics protocols would not.
func renderImage(path string, width, height int) (string, error) {
	img, err := termimg.Open(path)
	if err != nil {
		return "", err
	}
	return img.Width(width).Height(height).Protocol(termimg.Halfblocks).Render()
}

// localPath maps a media URL to a readable regular file, if it is one.
func (im *Images) localPath(url string) (string, os.FileInfo, bool) {
	path, isFile := strings.CutPrefix(url, "file://")
	if !isFile && strings.Contains(url, "://") {
		return "", nil, false
	}
	if path == "" {
		return "", nil, false
	}
	if !filepath.IsAbs(path) && im.root != "" {
		path = filepath.Join(im.root, path)
	}
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", nil, false
	}
	return path, info, true
}

// Render returns the image at url drawn in width x height cells, or false
// when url is not a local image that could be decoded.
func (im *Images) Render(url string, width, height int) (string, bool) {
	if im == nil || width <= 0 || height <= 0 {
		return "", false
	}
	path, info, ok := im.localPath(url)
	if !ok {
		return "", false
	}

	d := xxhash.New()
	_, _ = d.WriteString(path)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strconv.Itoa(width) + "x" + strconv.Itoa(height))
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(strconv.FormatInt(info.ModTime().UnixNano(), 10))
	key := d.Sum64()
	if out, ok := im.cache[key]; ok {
		return out, out != ""
	}

	out, err := im.renderFn(path, width, height)
	if err != nil {
		out = ""
	}
	if len(im.cache) >= imageCacheLimit {
		clear(im.cache)
	}
	im.cache[key] = out
	return out, out != ""
}
