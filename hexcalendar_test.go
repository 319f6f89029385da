package hexcalendar

import (
	"bytes"
	"image"
	"image/color"
	"io/ioutil"
	"log"
	"testing"

	"github.com/bodgit/hexcalendar/fonts"
	"github.com/bodgit/hexcalendar/month"
	"github.com/stretchr/testify/require"
)

func testCalendar(t *testing.T, layout Layout) (*Calendar, *bytes.Buffer) {
	t.Helper()

	faces, err := fonts.Load("builtin:gomonobold", fonts.DefaultSizes())
	require.NoError(t, err)
	t.Cleanup(func() { faces.Close() })

	b := new(bytes.Buffer)
	c := New(layout, month.DefaultStyle(faces.Month, faces.Week), YearStyle{
		Face:  faces.Year,
		Color: DefaultYearColor,
	}, log.New(b, "", 0))

	return c, b
}

func blankCanvas(l Layout) *image.RGBA {
	m := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))
	for i := 3; i < len(m.Pix); i += 4 {
		m.Pix[i] = 0xff
	}
	return m
}

// inked returns the bounding box of every pixel in r that differs from bg.
func inked(m *image.RGBA, r image.Rectangle, bg color.RGBA) image.Rectangle {
	var box image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if m.RGBAAt(x, y) != bg {
				box = box.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return box
}

func discard() *log.Logger {
	return log.New(ioutil.Discard, "", 0)
}
