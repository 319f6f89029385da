package hexcalendar

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	tables := []struct {
		w, h, maxW, maxH int
		wantW, wantH     int
	}{
		{2000, 2000, 900, 390, 355, 355},
		{100, 50, 900, 390, 100, 50},
		{900, 390, 900, 390, 900, 390},
		{1200, 300, 900, 390, 900, 225},
		{0, 0, 900, 390, 0, 0},
		{10, 10, 0, 390, 0, 0},
	}

	for _, table := range tables {
		w, h := Fit(table.w, table.h, table.maxW, table.maxH, 0.75)
		assert.Equal(t, table.wantW, w)
		assert.Equal(t, table.wantH, h)
	}
}

func writePNG(t *testing.T, m image.Image) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(file)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, m))
	return file
}

func TestAddImage(t *testing.T) {
	l := DefaultLayout()
	c, _ := testCalendar(t, l)

	red := color.RGBA{255, 0, 0, 255}
	src := image.NewRGBA(image.Rect(0, 0, 2000, 2000))
	draw.Draw(src, src.Bounds(), image.NewUniform(red), image.Point{}, draw.Src)
	file := writePNG(t, src)

	m := blankCanvas(l)
	require.NoError(t, c.addImage(m, file))

	box := inked(m, m.Bounds(), l.Background)
	assert.Equal(t, image.Rect(272, 17, 272+355, 17+355), box)

	// Equal margins either side, up to rounding
	assert.InDelta(t, box.Min.X, l.Width-box.Max.X, 1)
	assert.InDelta(t, box.Min.Y, l.MonthsTop-box.Max.Y, 1)

	for _, p := range []image.Point{box.Min, box.Max.Sub(image.Pt(1, 1)), image.Pt(450, 195)} {
		c := m.RGBAAt(p.X, p.Y)
		assert.Greater(t, c.R, uint8(200))
		assert.Less(t, c.G, uint8(50))
	}
}

func TestAddImageNoResize(t *testing.T) {
	l := DefaultLayout()
	c, _ := testCalendar(t, l)

	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	m := blankCanvas(l)
	require.NoError(t, c.addImage(m, writePNG(t, src)))
	assert.Equal(t, image.Rect(400, 170, 500, 220), inked(m, m.Bounds(), l.Background))
}

func TestAddImageMissing(t *testing.T) {
	l := DefaultLayout()
	c, logs := testCalendar(t, l)

	m := blankCanvas(l)
	before := append([]byte(nil), m.Pix...)

	require.NoError(t, c.addImage(m, filepath.Join("testdata", "missing.png")))
	assert.Equal(t, before, m.Pix)
	assert.Contains(t, logs.String(), "was not found")

	require.NoError(t, c.addImage(m, ""))
	assert.Equal(t, before, m.Pix)
}

func TestAddImageDirectory(t *testing.T) {
	l := DefaultLayout()
	c, logs := testCalendar(t, l)

	m := blankCanvas(l)
	before := append([]byte(nil), m.Pix...)

	require.NoError(t, c.addImage(m, t.TempDir()))
	assert.Equal(t, before, m.Pix)
	assert.Contains(t, logs.String(), "was not found")
}

func TestAddImageInvalid(t *testing.T) {
	l := DefaultLayout()
	c, _ := testCalendar(t, l)

	file := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(file, []byte("not an image"), 0644))

	assert.Error(t, c.addImage(blankCanvas(l), file))
}
