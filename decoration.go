package hexcalendar

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Fit repeatedly scales w and h by factor until they are no larger than
// maxW and maxH. Dimensions that already fit are returned unchanged.
func Fit(w, h, maxW, maxH int, factor float64) (int, int) {
	for (w > maxW || h > maxH) && w > 0 && h > 0 {
		w, h = int(float64(w)*factor), int(float64(h)*factor)
	}
	return w, h
}

// addImage draws the image in file centred in the band above the months.
// A missing file, or a path that is not a regular file, is not an error.
func (c *Calendar) addImage(dst draw.Image, file string) error {
	if file == "" {
		return nil
	}

	fi, err := os.Stat(file)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if err != nil || !fi.Mode().IsRegular() {
		c.logger.Printf("File \"%s\" was not found!\n", file)
		return nil
	}

	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("hexcalendar: %s: %w", file, err)
	}

	b := m.Bounds()
	w, h := Fit(b.Dx(), b.Dy(), c.layout.Width, c.layout.MonthsTop, c.layout.ShrinkFactor)
	if w == 0 || h == 0 {
		c.logger.Printf("Image \"%s\" is too small to draw after resizing\n", file)
		return nil
	}
	if w != b.Dx() || h != b.Dy() {
		m = transform.Resize(m, w, h, transform.Lanczos)
	}

	x := (c.layout.Width - w) / 2
	y := (c.layout.MonthsTop - h) / 2
	draw.Draw(dst, image.Rect(x, y, x+w, y+h), m, m.Bounds().Min, draw.Over)

	return nil
}
