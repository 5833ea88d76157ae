package main

import (
	"fmt"
	"os"

	"go-radial/config"
	"go-radial/midi"
	"go-radial/plot"
	"go-radial/theme"
	"go-radial/widgets"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	switch os.Args[1] {
	case "tracks":
		listTracks(cfg, fileArg())
	case "notes":
		listNotes(cfg, fileArg())
	case "events":
		listEvents(cfg, fileArg())
	case "palette":
		showPalette(cfg)
	case "init-config":
		initConfig()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI inspection tools")
	fmt.Println("")
	fmt.Println(widgets.RenderUsage([]widgets.Section{
		{Title: "Commands:", Commands: []widgets.Command{
			{Name: "tracks <file>", Desc: "List tracks with note counts"},
			{Name: "notes <file>", Desc: "Print extracted notes, earliest first"},
			{Name: "events <file>", Desc: "Print raw note and track-name events"},
			{Name: "palette", Desc: "Preview the configured pitch colours"},
			{Name: "init-config", Desc: "Write the default config file"},
		}},
	}))
}

func fileArg() string {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}
	return os.Args[2]
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func readNotes(cfg *config.Config, path string) *plot.Result {
	f, err := os.Open(path)
	if err != nil {
		fail(err)
	}
	defer f.Close()

	res, err := plot.Notes(f, cfg)
	if err != nil {
		fail(fmt.Errorf("%s: %w", path, err))
	}
	return res
}

func loadTheme(cfg *config.Config) *theme.Theme {
	p, err := cfg.Palette()
	if err != nil {
		fail(err)
	}
	return theme.New(p)
}

func listTracks(cfg *config.Config, path string) {
	res := readNotes(cfg, path)
	fmt.Printf("MIDI File: %s\n", path)
	fmt.Printf("Format: %d\n", res.File.Format)
	if res.File.TicksPerQuarter > 0 {
		fmt.Printf("Ticks per quarter note: %d\n", res.File.TicksPerQuarter)
	}
	fmt.Printf("Number of tracks: %d\n\n", res.File.Tracks)
	fmt.Println(widgets.RenderTrackTable(loadTheme(cfg), res.Stats))
}

func listNotes(cfg *config.Config, path string) {
	res := readNotes(cfg, path)
	for _, n := range res.Notes {
		fmt.Println(n)
	}
	fmt.Printf("\n%d notes\n", len(res.Notes))
}

func listEvents(cfg *config.Config, path string) {
	opts, err := cfg.ReadOptions()
	if err != nil {
		fail(err)
	}
	file, err := midi.ReadFile(path, opts...)
	if err != nil {
		fail(err)
	}
	for _, ev := range file.Events {
		fmt.Println(ev)
	}
	fmt.Printf("\n%d events in %d tracks\n", len(file.Events), file.Tracks)
}

func showPalette(cfg *config.Config) {
	th := loadTheme(cfg)
	fmt.Printf("Palette: %s\n", th.Palette.Name)
	fmt.Println(widgets.RenderGradient(th, 48))
	for i, c := range th.Palette.Colors {
		fmt.Println(widgets.RenderLegendItem(th, c, c.Hex(), fmt.Sprintf("stop %d", i)))
	}
}

func initConfig() {
	path, err := config.ConfigPath()
	if err != nil {
		fail(err)
	}
	if _, err := os.Stat(path); err == nil {
		fail(fmt.Errorf("%s already exists", path))
	}
	if err := config.DefaultConfig().Save(); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}
