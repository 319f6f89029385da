/*
Package month lays out a single month of a hexadecimal calendar.

A month block is a header with the month number, a row of weekday names and
a grid of day numbers, all written as two digit hexadecimal. The layout is
expressed as a list of text items positioned relative to the top left corner
of the block so the caller can place the block anywhere on a canvas.
*/
package month

import (
	"image/color"
	"strings"
	"time"

	"github.com/bodgit/hexcalendar/fonts"
	"golang.org/x/image/font"
)

// TextItem is a piece of text to draw at X, Y relative to the block origin.
// The position is the top left corner of the text, not its baseline.
type TextItem struct {
	Text  string
	X, Y  int
	Face  font.Face
	Color color.RGBA
}

// Style controls the appearance of a month block.
type Style struct {
	MonthFont    font.Face
	WeekFont     font.Face
	MonthColor   color.RGBA
	WeekColor    color.RGBA
	WeekendColor color.RGBA
	DaysColor    color.RGBA
	FirstWeekday Weekday
	MonthUpper   bool
	WeekUpper    bool
	DaysUpper    bool
}

// Default colors.
var (
	DefaultMonthColor   = color.RGBA{70, 130, 180, 255}
	DefaultWeekColor    = color.RGBA{70, 130, 180, 255}
	DefaultWeekendColor = color.RGBA{255, 220, 75, 255}
	DefaultDaysColor    = color.RGBA{255, 255, 255, 255}
)

// DefaultStyle returns the default style using the given faces, with weeks
// starting on Monday and everything in lowercase.
func DefaultStyle(monthFont, weekFont font.Face) Style {
	return Style{
		MonthFont:    monthFont,
		WeekFont:     weekFont,
		MonthColor:   DefaultMonthColor,
		WeekColor:    DefaultWeekColor,
		WeekendColor: DefaultWeekendColor,
		DaysColor:    DefaultDaysColor,
		FirstWeekday: Monday,
	}
}

// Spacing holds the fixed gaps within a block.
type Spacing struct {
	// LineSpacing is added between rows of the day grid.
	LineSpacing int
	// HeaderPadding lifts the month header above the block origin.
	HeaderPadding int
}

// DefaultSpacing returns a line spacing and header padding of 5 pixels.
func DefaultSpacing() Spacing {
	return Spacing{
		LineSpacing:   5,
		HeaderPadding: 5,
	}
}

func (s Style) weekendOr(d Weekday, c color.RGBA) color.RGBA {
	if d.IsWeekend() {
		return s.WeekendColor
	}
	return c
}

// weekRow lays out the weekday names at height y and returns them with the
// total width and height of the row.
func weekRow(s Style, y int) ([]TextItem, int, int) {
	space, _ := fonts.Measure(s.WeekFont, " ")

	items := make([]TextItem, 0, daysPerWeek)
	var x, height int
	for i, d := range Weekdays(s.FirstWeekday) {
		text := d.String()
		if s.WeekUpper {
			text = strings.ToUpper(text)
		}
		w, h := fonts.Measure(s.WeekFont, text)
		items = append(items, TextItem{
			Text:  text,
			X:     x,
			Y:     y,
			Face:  s.WeekFont,
			Color: s.weekendOr(d, s.WeekColor),
		})
		x += w
		if i < daysPerWeek-1 {
			x += space
		}
		if h > height {
			height = h
		}
	}

	return items, x, height
}

// dayGrid lays out every day of the month starting at height y.
func dayGrid(year int, m time.Month, s Style, sp Spacing, y int) []TextItem {
	space, _ := fonts.Measure(s.WeekFont, " ")

	items := make([]TextItem, 0, DaysIn(year, m))
	x := 0
	for i, c := range Cells(year, m, s.FirstWeekday) {
		text := Hex(c.Day, s.DaysUpper)
		w, h := fonts.Measure(s.WeekFont, text)
		// Rows step by the height of their first cell, which varies with
		// the glyphs drawn.
		if i > 0 && i%daysPerWeek == 0 {
			x = 0
			y += h + sp.LineSpacing
		}
		if c.Day != 0 {
			items = append(items, TextItem{
				Text:  text,
				X:     x,
				Y:     y,
				Face:  s.WeekFont,
				Color: s.weekendOr(c.Weekday, s.DaysColor),
			})
		}
		x += w + space
	}

	return items
}

// Layout returns the text items making up the block for the given month.
// The weekday row comes first, followed by the month header and the days in
// calendar order.
func Layout(year int, m time.Month, s Style, sp Spacing) []TextItem {
	header := Hex(int(m), s.MonthUpper)
	headerWidth, headerHeight := fonts.Measure(s.MonthFont, header)

	week, weekWidth, weekHeight := weekRow(s, headerHeight)

	items := append(week, TextItem{
		Text:  header,
		X:     weekWidth/2 - headerWidth/2,
		Y:     -sp.HeaderPadding,
		Face:  s.MonthFont,
		Color: s.MonthColor,
	})

	return append(items, dayGrid(year, m, s, sp, 2*weekHeight+headerHeight)...)
}
