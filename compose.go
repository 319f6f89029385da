package hexcalendar

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/ioutil"
	"time"

	"github.com/bodgit/hexcalendar/month"
	"github.com/bodgit/hexcalendar/palette"
	"golang.org/x/image/draw"
)

// ErrInvalidYear is returned for years before year 1.
var ErrInvalidYear = errors.New("hexcalendar: invalid year")

// Filename returns the conventional output filename for year.
func Filename(year int) string {
	return fmt.Sprintf("hex_calendar_%d.png", year)
}

// Generate draws the calendar for year. If decoration is not empty it
// names an image drawn above the months; a missing file is skipped.
func (c *Calendar) Generate(year int, decoration string) (*image.RGBA, error) {
	if year < 1 {
		return nil, ErrInvalidYear
	}
	if err := c.layout.validate(); err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, c.layout.Width, c.layout.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(c.layout.Background), image.Point{}, draw.Src)

	if err := c.addImage(canvas, decoration); err != nil {
		return nil, err
	}

	for m := time.January; m <= time.December; m++ {
		drawItems(canvas, month.Layout(year, m, c.style, c.layout.Spacing), c.layout.monthOrigin(m))
	}

	c.addYear(canvas, year)

	return canvas, nil
}

// WriteFile generates the calendar for year and saves it to file as a PNG
// image. If colors is greater than zero the image is reduced to a palette
// of that many colors. The file is only created once the image has been
// successfully encoded.
func (c *Calendar) WriteFile(year int, decoration, file string, colors int) error {
	m, err := c.Generate(year, decoration)
	if err != nil {
		return err
	}

	b := new(bytes.Buffer)
	if err := palette.Encode(b, m, colors); err != nil {
		return err
	}

	return ioutil.WriteFile(file, b.Bytes(), 0644)
}
