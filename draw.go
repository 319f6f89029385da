package hexcalendar

import (
	"image"

	"github.com/bodgit/hexcalendar/fonts"
	"github.com/bodgit/hexcalendar/month"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// drawItems draws each item with its position offset by origin.
func drawItems(dst draw.Image, items []month.TextItem, origin image.Point) {
	for _, item := range items {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(item.Color),
			Face: item.Face,
			Dot:  fixed.P(origin.X+item.X, origin.Y+item.Y+fonts.Ascent(item.Face)),
		}
		d.DrawString(item.Text)
	}
}
