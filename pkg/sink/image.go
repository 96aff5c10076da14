package sink

import (
	"bufio"
	"image"
	"image/color"
	"os"
	"sync/atomic"
)

// Image is a Sink backed by an in-memory RGBA buffer that is encoded to a
// file on Finalize, in the format named by the file's extension.
type Image struct {
	path      string
	enc       Encoder
	img       *image.RGBA
	finalized atomic.Bool
}

var _ Sink = (*Image)(nil)

// NewImage returns an empty width×height sink that will be written to path.
func NewImage(path string, width, height int) (*Image, error) {
	enc, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	return &Image{
		path: path,
		enc:  enc,
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
	}, nil
}

// Path returns the output file path.
func (s *Image) Path() string { return s.path }

// Image returns the underlying buffer.
func (s *Image) Image() *image.RGBA { return s.img }

// Set writes the color at column i, row j.
func (s *Image) Set(i, j int, c RGB) error {
	if s.finalized.Load() {
		return &WriteError{Op: "set", Path: s.path, X: i, Y: j, Err: ErrFinalized}
	}
	if !(image.Point{X: i, Y: j}).In(s.img.Rect) {
		return &WriteError{Op: "set", Path: s.path, X: i, Y: j, Err: ErrOutOfBounds}
	}
	if !c.valid() {
		return &WriteError{Op: "set", Path: s.path, X: i, Y: j, Err: ErrChannelRange}
	}
	s.img.SetRGBA(i, j, color.RGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: 0xff})
	return nil
}

// Finalize encodes the buffer to the output file. It may be called once.
func (s *Image) Finalize() (err error) {
	if !s.finalized.CompareAndSwap(false, true) {
		return &WriteError{Op: "finalize", Path: s.path, Err: ErrFinalized}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return &WriteError{Op: "create", Path: s.path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &WriteError{Op: "close", Path: s.path, Err: cerr}
		}
	}()
	bw := bufio.NewWriter(f)
	if err := s.enc(bw, s.img); err != nil {
		return &WriteError{Op: "encode", Path: s.path, Err: err}
	}
	if err := bw.Flush(); err != nil {
		return &WriteError{Op: "write", Path: s.path, Err: err}
	}
	return nil
}
