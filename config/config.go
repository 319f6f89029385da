/*
Package config reads the optional style and layout file used by the
hexcalendar command.

The file may be written in TOML or YAML, chosen by its extension. Colors are
given as "#rgb", "#rrggbb" or "#rrggbbaa" hex triplets or as SVG color names
such as "steelblue". Any value left out keeps its default.
*/
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bodgit/hexcalendar"
	"github.com/bodgit/hexcalendar/fonts"
	"github.com/bodgit/hexcalendar/month"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var (
	errUnknownFormat = errors.New("config: unknown format")
	errBadColor      = errors.New("config: invalid color")
	errBadWeekday    = errors.New("config: invalid weekday")
)

// Colors holds every color as a string.
type Colors struct {
	Month      string `toml:"month" yaml:"month"`
	Week       string `toml:"week" yaml:"week"`
	Weekend    string `toml:"weekend" yaml:"weekend"`
	Days       string `toml:"days" yaml:"days"`
	Year       string `toml:"year" yaml:"year"`
	Background string `toml:"background" yaml:"background"`
}

// Upper selects which text is drawn in uppercase.
type Upper struct {
	Month bool `toml:"month" yaml:"month"`
	Week  bool `toml:"week" yaml:"week"`
	Days  bool `toml:"days" yaml:"days"`
	Year  bool `toml:"year" yaml:"year"`
}

// Font names the font file and the size of each face.
type Font struct {
	Name      string  `toml:"name" yaml:"name"`
	MonthSize float64 `toml:"month_size" yaml:"month_size"`
	WeekSize  float64 `toml:"week_size" yaml:"week_size"`
	YearSize  float64 `toml:"year_size" yaml:"year_size"`
}

// Layout mirrors hexcalendar.Layout.
type Layout struct {
	Width               int     `toml:"width" yaml:"width"`
	Height              int     `toml:"height" yaml:"height"`
	MonthsLeft          int     `toml:"months_left" yaml:"months_left"`
	MonthsTop           int     `toml:"months_top" yaml:"months_top"`
	MonthHorizontalStep int     `toml:"month_horizontal_step" yaml:"month_horizontal_step"`
	MonthVerticalStep   int     `toml:"month_vertical_step" yaml:"month_vertical_step"`
	MonthsInRow         int     `toml:"months_in_row" yaml:"months_in_row"`
	LineSpacing         int     `toml:"line_spacing" yaml:"line_spacing"`
	HeaderPadding       int     `toml:"header_padding" yaml:"header_padding"`
	YearTopPadding      int     `toml:"year_top_padding" yaml:"year_top_padding"`
	YearRightPadding    int     `toml:"year_right_padding" yaml:"year_right_padding"`
	YearBufferSize      int     `toml:"year_buffer_size" yaml:"year_buffer_size"`
	ShrinkFactor        float64 `toml:"shrink_factor" yaml:"shrink_factor"`
}

// Config is the contents of a configuration file.
type Config struct {
	Year         int    `toml:"year" yaml:"year"`
	Image        string `toml:"image" yaml:"image"`
	FirstWeekday string `toml:"first_weekday" yaml:"first_weekday"`
	Font         Font   `toml:"font" yaml:"font"`
	Colors       Colors `toml:"colors" yaml:"colors"`
	Upper        Upper  `toml:"upper" yaml:"upper"`
	Layout       Layout `toml:"layout" yaml:"layout"`
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Default returns the configuration that draws the 2018 calendar exactly
// as the command does with no configuration file.
func Default() *Config {
	l := hexcalendar.DefaultLayout()
	s := fonts.DefaultSizes()

	return &Config{
		Year:         2018,
		Image:        "spb_python_logo.png",
		FirstWeekday: "monday",
		Font: Font{
			Name:      "FreeMonoBold.ttf",
			MonthSize: s.Month,
			WeekSize:  s.Week,
			YearSize:  s.Year,
		},
		Colors: Colors{
			Month:      hex(month.DefaultMonthColor),
			Week:       hex(month.DefaultWeekColor),
			Weekend:    hex(month.DefaultWeekendColor),
			Days:       hex(month.DefaultDaysColor),
			Year:       hex(hexcalendar.DefaultYearColor),
			Background: hex(l.Background),
		},
		Layout: Layout{
			Width:               l.Width,
			Height:              l.Height,
			MonthsLeft:          l.MonthsLeft,
			MonthsTop:           l.MonthsTop,
			MonthHorizontalStep: l.MonthHorizontalStep,
			MonthVerticalStep:   l.MonthVerticalStep,
			MonthsInRow:         l.MonthsInRow,
			LineSpacing:         l.Spacing.LineSpacing,
			HeaderPadding:       l.Spacing.HeaderPadding,
			YearTopPadding:      l.YearTopPadding,
			YearRightPadding:    l.YearRightPadding,
			YearBufferSize:      l.YearBufferSize,
			ShrinkFactor:        l.ShrinkFactor,
		},
	}
}

// Load reads file on top of the defaults. Files ending in .toml are read
// as TOML and files ending in .yaml or .yml as YAML.
func Load(file string) (*Config, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}

	c := Default()

	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		err = toml.Unmarshal(b, c)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, c)
	default:
		return nil, fmt.Errorf("%w: %s", errUnknownFormat, file)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", file, err)
	}

	return c, nil
}

// WriteTOML writes the configuration to w in TOML format.
func (c *Config) WriteTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// ParseColor parses a hex triplet, with optional alpha, or an SVG color
// name.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}

	h := s[1:]
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", errBadColor, s)
	}

	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// ParseWeekday parses either a weekday name, full or abbreviated, or a
// number from 0 for Monday to 6 for Sunday.
func ParseWeekday(s string) (month.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < int(month.Monday) || n > int(month.Sunday) {
			return 0, fmt.Errorf("%w: %q", errBadWeekday, s)
		}
		return month.Weekday(n), nil
	}

	for _, d := range month.Weekdays(month.Monday) {
		name := strings.ToLower(d.String())
		if s == name || (len(s) > 2 && strings.HasPrefix(fullNames[d], s)) {
			return d, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", errBadWeekday, s)
}

var fullNames = map[month.Weekday]string{
	month.Monday:    "monday",
	month.Tuesday:   "tuesday",
	month.Wednesday: "wednesday",
	month.Thursday:  "thursday",
	month.Friday:    "friday",
	month.Saturday:  "saturday",
	month.Sunday:    "sunday",
}

// Sizes returns the font sizes.
func (c *Config) Sizes() fonts.Sizes {
	return fonts.Sizes{
		Month: c.Font.MonthSize,
		Week:  c.Font.WeekSize,
		Year:  c.Font.YearSize,
	}
}

// CalendarLayout converts the layout section.
func (c *Config) CalendarLayout() (hexcalendar.Layout, error) {
	bg, err := ParseColor(c.Colors.Background)
	if err != nil {
		return hexcalendar.Layout{}, err
	}

	return hexcalendar.Layout{
		Width:               c.Layout.Width,
		Height:              c.Layout.Height,
		Background:          bg,
		MonthsLeft:          c.Layout.MonthsLeft,
		MonthsTop:           c.Layout.MonthsTop,
		MonthHorizontalStep: c.Layout.MonthHorizontalStep,
		MonthVerticalStep:   c.Layout.MonthVerticalStep,
		MonthsInRow:         c.Layout.MonthsInRow,
		Spacing: month.Spacing{
			LineSpacing:   c.Layout.LineSpacing,
			HeaderPadding: c.Layout.HeaderPadding,
		},
		YearTopPadding:   c.Layout.YearTopPadding,
		YearRightPadding: c.Layout.YearRightPadding,
		YearBufferSize:   c.Layout.YearBufferSize,
		ShrinkFactor:     c.Layout.ShrinkFactor,
	}, nil
}

// Styles builds the month and year styles using the given faces.
func (c *Config) Styles(faces fonts.Faces) (month.Style, hexcalendar.YearStyle, error) {
	first, err := ParseWeekday(c.FirstWeekday)
	if err != nil {
		return month.Style{}, hexcalendar.YearStyle{}, err
	}

	var colors [5]color.RGBA
	for i, s := range []string{c.Colors.Month, c.Colors.Week, c.Colors.Weekend, c.Colors.Days, c.Colors.Year} {
		if colors[i], err = ParseColor(s); err != nil {
			return month.Style{}, hexcalendar.YearStyle{}, err
		}
	}

	return month.Style{
			MonthFont:    faces.Month,
			WeekFont:     faces.Week,
			MonthColor:   colors[0],
			WeekColor:    colors[1],
			WeekendColor: colors[2],
			DaysColor:    colors[3],
			FirstWeekday: first,
			MonthUpper:   c.Upper.Month,
			WeekUpper:    c.Upper.Week,
			DaysUpper:    c.Upper.Days,
		}, hexcalendar.YearStyle{
			Face:  faces.Year,
			Color: colors[4],
			Upper: c.Upper.Year,
		}, nil
}
