package sink

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Encoder writes an image in one file format.
type Encoder func(w io.Writer, img image.Image) error

var formats = map[string]Encoder{}

// RegisterFormat associates a file extension, without the dot, with an encoder.
func RegisterFormat(ext string, enc Encoder) {
	formats[strings.ToLower(ext)] = enc
}

func init() {
	RegisterFormat("png", png.Encode)
	jpg := func(w io.Writer, img image.Image) error {
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
	}
	RegisterFormat("jpg", jpg)
	RegisterFormat("jpeg", jpg)
	RegisterFormat("gif", func(w io.Writer, img image.Image) error {
		return gif.Encode(w, img, nil)
	})
	RegisterFormat("bmp", bmp.Encode)
	tif := func(w io.Writer, img image.Image) error {
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	RegisterFormat("tif", tif)
	RegisterFormat("tiff", tif)
}

// FormatFor returns the encoder for path's extension.
func FormatFor(path string) (Encoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return nil, fmt.Errorf("sink: %s has no file extension (supported: %s)", path, strings.Join(Formats(), ", "))
	}
	enc, ok := formats[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("sink: extension %q not supported (supported: %s)", ext, strings.Join(Formats(), ", "))
	}
	return enc, nil
}

// Formats returns the registered extensions, sorted.
func Formats() []string {
	exts := make([]string, 0, len(formats))
	for k := range formats {
		exts = append(exts, k)
	}
	sort.Strings(exts)
	return exts
}
