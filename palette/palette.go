/*
Package palette encodes a rendered calendar as a PNG image, optionally
reducing it to a small indexed palette first.

A calendar is drawn with a handful of colors plus the antialiased edges of
its glyphs so a median cut palette of 16 or 32 colors is usually
indistinguishable from the full RGB image while being considerably smaller.
*/
package palette

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/ericpauley/go-quantize/quantize"
)

const maxColors = 256

var errBadColors = errors.New("palette: number of colors must be between 1 and 256")

// Reduce returns m as a paletted image of at most n colors. An image that
// already uses a small enough palette is converted without quantizing.
func Reduce(m image.Image, n int) (*image.Paletted, error) {
	if n < 1 || n > maxColors {
		return nil, errBadColors
	}

	b := m.Bounds()

	pm, _ := m.(*image.Paletted)
	if pm == nil {
		if cp, ok := m.ColorModel().(color.Palette); ok {
			pm = image.NewPaletted(b, cp)
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					pm.Set(x, y, cp.Convert(m.At(x, y)))
				}
			}
		}
	}

	if pm == nil || len(pm.Palette) > n {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	return pm, nil
}

// Encode writes m to w in PNG format. If colors is greater than zero the
// image is reduced to that many colors first.
func Encode(w io.Writer, m image.Image, colors int) error {
	if colors > 0 {
		pm, err := Reduce(m, colors)
		if err != nil {
			return err
		}
		m = pm
	}

	e := png.Encoder{CompressionLevel: png.BestCompression}

	return e.Encode(w, m)
}
