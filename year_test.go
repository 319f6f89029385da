package hexcalendar

import (
	"image"
	"image/color"
	"testing"

	"github.com/bodgit/hexcalendar/fonts"
	"github.com/bodgit/hexcalendar/month"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddYear(t *testing.T) {
	l := DefaultLayout()

	for _, upper := range []bool{false, true} {
		c, _ := testCalendar(t, l)
		c.logger = discard()
		c.year.Upper = upper

		m := blankCanvas(l)
		c.addYear(m, 2018)

		box := inked(m, m.Bounds(), l.Background)
		assert.False(t, box.Empty())

		w, h := fonts.Measure(c.year.Face, month.HexYear(2018, upper))
		size := max(l.YearBufferSize, w, h)

		// The label hugs the top right corner and runs downwards
		assert.LessOrEqual(t, box.Max.X, l.Width-l.YearRightPadding+1)
		assert.GreaterOrEqual(t, box.Min.X, l.Width-l.YearRightPadding-size-1)
		assert.GreaterOrEqual(t, box.Min.Y, l.YearTopPadding-1)
		assert.LessOrEqual(t, box.Max.Y, l.YearTopPadding+size+1)
		assert.Greater(t, box.Dy(), box.Dx())

		// Nothing else on the canvas is touched
		assert.True(t, inked(m, image.Rect(0, 0, l.Width-size-l.YearRightPadding-1, l.Height), l.Background).Empty())
	}
}

func TestTurnClockwise(t *testing.T) {
	c, _ := testCalendar(t, DefaultLayout())

	buf := c.yearBuffer(month.HexYear(2018, false))
	size := buf.Bounds().Dx()

	rotated := turnClockwise(buf)
	b := rotated.Bounds()
	assert.Equal(t, size, b.Dx())
	assert.Equal(t, size, b.Dy())

	differ := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if rotated.RGBAAt(b.Min.X+x, b.Min.Y+y) != buf.RGBAAt(y, size-1-x) {
				differ++
			}
		}
	}
	assert.Zero(t, differ)
}

func TestYearReadsDownwards(t *testing.T) {
	c, _ := testCalendar(t, DefaultLayout())

	// The first glyph on its own ends up in the top right quarter once
	// turned, so the label starts at the top
	first := turnClockwise(c.yearBuffer("0"))
	b := first.Bounds()
	glyph := inked(first, b, color.RGBA{})
	require.False(t, glyph.Empty())
	assert.Less(t, glyph.Max.Y, b.Min.Y+b.Dy()/2)
	assert.Greater(t, glyph.Min.X, b.Min.X+b.Dx()/2)

	label := inked(turnClockwise(c.yearBuffer("0x7e2")), b, color.RGBA{})
	assert.Equal(t, label.Min.Y, glyph.Min.Y)
	assert.Less(t, glyph.Max.Y, label.Max.Y)
}
