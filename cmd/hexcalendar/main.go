package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/bodgit/hexcalendar"
	"github.com/bodgit/hexcalendar/config"
	"github.com/bodgit/hexcalendar/fonts"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if file := c.String("config"); file != "" {
		var err error
		if cfg, err = config.Load(file); err != nil {
			return nil, err
		}
	}

	if c.IsSet("year") {
		cfg.Year = c.Int("year")
	}
	if c.IsSet("image") {
		cfg.Image = c.String("image")
	}
	if c.IsSet("font") {
		cfg.Font.Name = c.String("font")
	}
	if c.IsSet("first-weekday") {
		cfg.FirstWeekday = c.String("first-weekday")
	}
	if c.Bool("upper") {
		cfg.Upper = config.Upper{Month: true, Week: true, Days: true, Year: true}
	}

	return cfg, nil
}

func generate(c *cli.Context) error {
	logger := log.New(os.Stderr, "", 0)
	if c.Bool("quiet") {
		logger.SetOutput(ioutil.Discard)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	layout, err := cfg.CalendarLayout()
	if err != nil {
		return cli.Exit(err, 1)
	}

	faces, err := fonts.Load(cfg.Font.Name, cfg.Sizes())
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer faces.Close()

	style, year, err := cfg.Styles(faces)
	if err != nil {
		return cli.Exit(err, 1)
	}

	output := c.String("output")
	if output == "" {
		output = hexcalendar.Filename(cfg.Year)
	}

	cal := hexcalendar.New(layout, style, year, logger)
	if err := cal.WriteFile(cfg.Year, cfg.Image, output, c.Int("colors")); err != nil {
		return cli.Exit(err, 1)
	}

	return nil
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "hexcalendar"
	app.Usage = "Hexadecimal wall calendar generator"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "suppress notices",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "generate",
			Usage:       "Draw the calendar for a year",
			Description: "",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "config",
					Aliases: []string{"c"},
					EnvVars: []string{"HEXCALENDAR_CONFIG"},
					Usage:   "path to TOML or YAML configuration `FILE`",
				},
				&cli.IntFlag{
					Name:    "year",
					Aliases: []string{"y"},
					Value:   config.Default().Year,
					Usage:   "year to draw",
				},
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "output `FILE`, defaults to hex_calendar_<year>.png",
				},
				&cli.StringFlag{
					Name:  "image",
					Value: config.Default().Image,
					Usage: "decorative image drawn above the months, skipped if missing",
				},
				&cli.StringFlag{
					Name:    "font",
					EnvVars: []string{"HEXCALENDAR_FONT"},
					Value:   config.Default().Font.Name,
					Usage:   "font file or one of builtin:gomonobold, builtin:lmmono",
				},
				&cli.StringFlag{
					Name:  "first-weekday",
					Value: config.Default().FirstWeekday,
					Usage: "first day of the week",
				},
				&cli.BoolFlag{
					Name:  "upper",
					Usage: "draw all text in uppercase",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "reduce the image to a palette of `N` colors, 0 keeps full color",
				},
			},
			Action: generate,
		},
		{
			Name:        "config",
			Usage:       "Print the default configuration",
			Description: "",
			Action: func(c *cli.Context) error {
				if err := config.Default().WriteTOML(os.Stdout); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
