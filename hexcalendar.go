/*
Package hexcalendar draws a yearly calendar in which the year, the months
and the days are all written in hexadecimal.

Twelve month blocks are arranged in a grid below a band reserved for an
optional decorative image, and the year is written vertically down the right
hand edge of the canvas.
*/
package hexcalendar

import (
	"image/color"
	"log"

	"github.com/bodgit/hexcalendar/month"
	"golang.org/x/image/font"
)

// DefaultYearColor is the default color of the year label.
var DefaultYearColor = color.RGBA{80, 130, 180, 255}

// YearStyle controls the appearance of the year label.
type YearStyle struct {
	Face  font.Face
	Color color.RGBA
	Upper bool
}

// Calendar draws calendars with a fixed layout and style.
type Calendar struct {
	layout Layout
	style  month.Style
	year   YearStyle
	logger *log.Logger
}

// New returns a Calendar. Every month is drawn with the same style.
func New(layout Layout, style month.Style, year YearStyle, logger *log.Logger) *Calendar {
	return &Calendar{
		layout: layout,
		style:  style,
		year:   year,
		logger: logger,
	}
}
