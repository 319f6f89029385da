package hexcalendar

import (
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/bodgit/hexcalendar/month"
)

var errBadLayout = errors.New("hexcalendar: invalid layout")

// Layout holds the dimensions of the canvas and the position of everything
// drawn on it. All values are in pixels.
type Layout struct {
	Width      int
	Height     int
	Background color.RGBA

	// MonthsTop is both the top of the first row of months and the height
	// of the band the decorative image is centred in.
	MonthsLeft          int
	MonthsTop           int
	MonthHorizontalStep int
	MonthVerticalStep   int
	MonthsInRow         int
	Spacing             month.Spacing

	YearTopPadding   int
	YearRightPadding int
	// YearBufferSize is the minimum size of the square the year label is
	// drawn into before it is rotated.
	YearBufferSize int

	// ShrinkFactor is applied repeatedly to the decorative image until it
	// fits, and must be between 0 and 1.
	ShrinkFactor float64
}

// DefaultLayout returns the layout of a 900 by 900 calendar with four
// columns of months.
func DefaultLayout() Layout {
	return Layout{
		Width:               900,
		Height:              900,
		Background:          color.RGBA{0, 0, 0, 255},
		MonthsLeft:          30,
		MonthsTop:           390,
		MonthHorizontalStep: 220,
		MonthVerticalStep:   160,
		MonthsInRow:         4,
		Spacing:             month.DefaultSpacing(),
		YearTopPadding:      10,
		YearRightPadding:    10,
		YearBufferSize:      100,
		ShrinkFactor:        0.75,
	}
}

func (l Layout) validate() error {
	switch {
	case l.Width <= 0, l.Height <= 0:
		return errBadLayout
	case l.MonthsInRow <= 0:
		return errBadLayout
	case l.ShrinkFactor <= 0, l.ShrinkFactor >= 1:
		return errBadLayout
	}
	return nil
}

// monthOrigin returns the top left corner of the block for month m.
func (l Layout) monthOrigin(m time.Month) image.Point {
	i := int(m) - 1
	return image.Pt(
		l.MonthsLeft+l.MonthHorizontalStep*(i%l.MonthsInRow),
		l.MonthsTop+l.MonthVerticalStep*(i/l.MonthsInRow),
	)
}
