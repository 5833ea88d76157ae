package main

import (
	"fmt"
	"os"

	"go-radial/config"
	"go-radial/debug"
	"go-radial/plot"
	"go-radial/theme"
	"go-radial/widgets"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("usage: go-radial <input.mid> <output.svg>")
		fmt.Println("")
		fmt.Println("Settings are read from ~/.config/go-radial/config.yaml when present.")
		os.Exit(2)
	}
	input, output := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Debug {
		if err := debug.EnableDefault(); err != nil {
			fmt.Fprintf(os.Stderr, "debug log disabled: %v\n", err)
		}
		defer debug.Disable()
	}

	palette, err := cfg.Palette()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	th := theme.New(palette)

	res, err := plot.RenderFile(input, output, cfg)
	if err != nil {
		debug.Log("main", "failed: %v", err)
		debug.Disable()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Print(widgets.RenderSummary(th, res.Stats, output))
	if len(res.Stats.Tracks) > 0 {
		fmt.Println("")
		fmt.Println(widgets.RenderTrackTable(th, res.Stats))
	}
}
