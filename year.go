package hexcalendar

import (
	"image"

	"github.com/anthonynsimon/bild/transform"
	"github.com/bodgit/hexcalendar/fonts"
	"github.com/bodgit/hexcalendar/month"
	"golang.org/x/image/draw"
)

// yearBuffer draws text at the top left corner of a transparent square
// buffer big enough to hold it in either orientation.
func (c *Calendar) yearBuffer(text string) *image.RGBA {
	w, h := fonts.Measure(c.year.Face, text)

	size := max(c.layout.YearBufferSize, w, h)
	buf := image.NewRGBA(image.Rect(0, 0, size, size))
	drawItems(buf, []month.TextItem{{Text: text, Face: c.year.Face, Color: c.year.Color}}, image.Point{})

	return buf
}

// turnClockwise turns m a quarter turn clockwise.
func turnClockwise(m image.Image) *image.RGBA {
	return transform.Rotate(m, 90, &transform.RotationOptions{ResizeBounds: true})
}

// addYear writes the year down the right hand edge of dst, reading from
// top to bottom.
func (c *Calendar) addYear(dst draw.Image, year int) {
	text := month.HexYear(year, c.year.Upper)
	w, h := fonts.Measure(c.year.Face, text)

	buf := c.yearBuffer(text)
	size := buf.Bounds().Dx()
	rotated := turnClockwise(buf)

	// A clockwise quarter turn moves the text from the top left corner to
	// the top right corner of the buffer
	bounds := image.Rect(size-h, 0, size, w)

	pt := image.Pt(c.layout.Width-c.layout.YearRightPadding-bounds.Max.X, c.layout.YearTopPadding-bounds.Min.Y)
	r := rotated.Bounds().Sub(rotated.Bounds().Min).Add(pt)
	draw.Draw(dst, r, rotated, rotated.Bounds().Min, draw.Over)
}
