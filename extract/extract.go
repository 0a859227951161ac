// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package extract finds the dominant color and a small palette of
// common colors in an image, by counting quantized colors over a
// sample of its pixels.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log/slog"
	"math"
	"os"
	"slices"

	"cogentcore.org/swatch/colors"
	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
)

const (
	// MaxDimension is the maximum width and height at which images are
	// sampled; larger images are downscaled first, keeping their aspect ratio.
	MaxDimension = 200

	// AlphaThreshold is the minimum alpha value (0-255) of a counted pixel.
	AlphaThreshold = 125

	// PaletteSize is the maximum number of palette colors, not counting
	// the dominant color.
	PaletteSize = 5

	// DefaultStride is the default pixel sampling stride.
	DefaultStride = 10

	// MaxFileSize is the maximum size in bytes of an image
	// read by [File] and [Reader].
	MaxFileSize = 5 << 20
)

var (
	// ErrNoColors is returned when an image has no pixel that
	// is opaque enough to be counted.
	ErrNoColors = errors.New("no colors found")

	// ErrDecode is returned when image data cannot be decoded.
	ErrDecode = errors.New("cannot decode image")

	// ErrTooLarge is returned when an image file exceeds [MaxFileSize].
	ErrTooLarge = errors.New("image file too large")

	// ErrNotImage is returned when file content is not an image.
	ErrNotImage = errors.New("not an image")
)

// Swatch is one quantized color of an image and the number
// of sampled pixels that have it.
type Swatch struct {
	Hex   string
	Count int
}

// Result is the result of color extraction from an image.
type Result struct {

	// Dominant is the most common quantized color.
	Dominant string

	// Palette are the next most common colors after the
	// dominant one, at most [PaletteSize] of them.
	Palette []string

	// Swatches are all of the quantized colors found, most common first.
	Swatches []Swatch

	// Sampled is the number of pixels that were counted.
	Sampled int
}

// quantize rounds a channel value to the nearest multiple of 10,
// capped at 250 so that the result stays a multiple of 10.
func quantize(v uint8) uint8 {
	return uint8(min(math.Round(float64(v)/10)*10, 250))
}

// fitSize returns the size of an image of the given size
// scaled down to fit within [MaxDimension].
func fitSize(w, h int) (int, int) {
	m := max(w, h)
	if m <= MaxDimension {
		return w, h
	}
	scale := float64(MaxDimension) / float64(m)
	return max(int(math.Round(float64(w)*scale)), 1), max(int(math.Round(float64(h)*scale)), 1)
}

// asNRGBA returns a non-premultiplied copy of the given image
// with its bounds starting at the origin and no row padding.
func asNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	nr := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nr, nr.Bounds(), img, b.Min, draw.Src)
	return nr
}

// Image returns the dominant color and palette of the given image,
// counting every stride-th pixel in row-major order. A stride less
// than 1 counts every pixel. Colors with equal counts are ordered by
// the first sampled pixel that has them. A stride larger than the
// number of pixels counts only the first pixel.
func Image(img image.Image, stride int) (Result, error) {
	if img == nil || img.Bounds().Empty() {
		return Result{}, fmt.Errorf("extract.Image: %w", ErrNoColors)
	}
	stride = max(stride, 1)
	b := img.Bounds()
	w, h := fitSize(b.Dx(), b.Dy())
	if w != b.Dx() || h != b.Dy() {
		img = transform.Resize(img, w, h, transform.Linear)
	}
	pix := asNRGBA(img).Pix
	stride = min(stride, max(len(pix)/4, 1))

	counts := map[string]int{}
	var order []string
	n := 0
	for i := 0; i+3 < len(pix); i += 4 * stride {
		if pix[i+3] < AlphaThreshold {
			continue
		}
		hex := colors.RGBToHex(quantize(pix[i]), quantize(pix[i+1]), quantize(pix[i+2]))
		if _, has := counts[hex]; !has {
			order = append(order, hex)
		}
		counts[hex]++
		n++
	}
	slog.Debug("extract.Image", "width", w, "height", h, "stride", stride, "sampled", n, "colors", len(order))
	if n == 0 {
		return Result{}, fmt.Errorf("extract.Image: %w", ErrNoColors)
	}

	sw := make([]Swatch, len(order))
	for i, hex := range order {
		sw[i] = Swatch{Hex: hex, Count: counts[hex]}
	}
	slices.SortStableFunc(sw, func(a, b Swatch) int {
		return b.Count - a.Count
	})

	res := Result{Dominant: sw[0].Hex, Swatches: sw, Sampled: n}
	for _, s := range sw[1:min(len(sw), PaletteSize+1)] {
		res.Palette = append(res.Palette, s.Hex)
	}
	return res, nil
}

// Reader reads an image of at most [MaxFileSize] bytes from the
// given reader and extracts its colors with the given stride.
func Reader(r io.Reader, stride int) (Result, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return Result{}, fmt.Errorf("extract.Reader: %w", err)
	}
	if len(data) > MaxFileSize {
		return Result{}, fmt.Errorf("extract.Reader: %w: more than %d bytes", ErrTooLarge, MaxFileSize)
	}
	if !filetype.IsImage(data) {
		return Result{}, fmt.Errorf("extract.Reader: %w", ErrNotImage)
	}
	img, format, err := Decode(bytes.NewReader(data))
	if err != nil {
		return Result{}, err
	}
	slog.Debug("extract.Reader", "format", format, "bytes", len(data))
	return Image(img, stride)
}

// File extracts the colors of the image file with the given path.
func File(path string, stride int) (Result, error) {
	st, err := os.Stat(path)
	if err != nil {
		return Result{}, err
	}
	if st.Size() > MaxFileSize {
		return Result{}, fmt.Errorf("extract.File: %w: %s is %d bytes", ErrTooLarge, path, st.Size())
	}
	f, err := os.Open(path)
	if err != nil {
		return Result{}, err
	}
	defer f.Close()
	return Reader(f, stride)
}
