/*
Package fonts loads the faces used to draw a calendar and measures text
rendered with them.

A font is named either by a path to a TrueType/OpenType file or by one of
the builtin names prefixed with "builtin:", which are compiled into the
binary.
*/
package fonts

import (
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/opentype"
)

const builtinPrefix = "builtin:"

// Default point sizes for each face.
const (
	MonthSize = 18
	WeekSize  = 15
	YearSize  = 25
)

var builtin = map[string][]byte{
	"gomonobold": gomonobold.TTF,
	"lmmono":     lmmono10regular.TTF,
}

var errUnknownBuiltin = errors.New("fonts: unknown builtin font")

// Sizes holds the point size of each face.
type Sizes struct {
	Month float64
	Week  float64
	Year  float64
}

// DefaultSizes returns the sizes 18, 15 and 25.
func DefaultSizes() Sizes {
	return Sizes{
		Month: MonthSize,
		Week:  WeekSize,
		Year:  YearSize,
	}
}

// Faces groups the three faces a calendar is drawn with.
type Faces struct {
	Month font.Face
	Week  font.Face
	Year  font.Face
}

// Close releases all faces.
func (f Faces) Close() error {
	var err error
	for _, face := range []font.Face{f.Month, f.Week, f.Year} {
		if face == nil {
			continue
		}
		if e := face.Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

// Builtin reports whether name refers to a compiled-in font.
func Builtin(name string) bool {
	_, ok := builtin[strings.TrimPrefix(name, builtinPrefix)]
	return strings.HasPrefix(name, builtinPrefix) && ok
}

// Open parses the font named by name, which is either a file path or a
// builtin name such as "builtin:gomonobold".
func Open(name string) (*opentype.Font, error) {
	var b []byte
	if strings.HasPrefix(name, builtinPrefix) {
		var ok bool
		if b, ok = builtin[strings.TrimPrefix(name, builtinPrefix)]; !ok {
			return nil, fmt.Errorf("%w: %q", errUnknownBuiltin, name)
		}
	} else {
		var err error
		if b, err = ioutil.ReadFile(name); err != nil {
			return nil, err
		}
	}
	return opentype.Parse(b)
}

// NewFace returns a face of f at the given point size. One point maps to
// one pixel.
func NewFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Load opens the named font once and creates a face for each size.
func Load(name string, sizes Sizes) (Faces, error) {
	f, err := Open(name)
	if err != nil {
		return Faces{}, err
	}

	var faces Faces
	for _, x := range []struct {
		face *font.Face
		size float64
	}{
		{&faces.Month, sizes.Month},
		{&faces.Week, sizes.Week},
		{&faces.Year, sizes.Year},
	} {
		if *x.face, err = NewFace(f, x.size); err != nil {
			faces.Close()
			return Faces{}, err
		}
	}

	return faces, nil
}

// Measure returns the width and height in pixels of s drawn with face. The
// width is the advance of the whole string and the height runs from the top
// of the ascent to the lowest inked pixel, or the baseline if nothing
// descends below it.
func Measure(face font.Face, s string) (int, int) {
	bounds, advance := font.BoundString(face, s)
	descent := bounds.Max.Y
	if descent < 0 {
		descent = 0
	}
	return advance.Ceil(), (face.Metrics().Ascent + descent).Ceil()
}

// Ascent returns the distance in pixels from the top of a line to its
// baseline.
func Ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}
