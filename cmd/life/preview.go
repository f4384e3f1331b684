package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagGenerations int
	flagASCII       bool
	flagGraph       bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a generation of a seeded board",
	Long: `Evolve a seeded board without the interactive loop and print the result.
Stepping stops early when a generation no longer changes.

Examples:
  life preview
  life preview --seed 55 --x-len 5 --y-len 5 --generations 10
  life preview --ascii --graph --generations 200
  life preview --mode debug`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&flagGenerations, "generations", 0, "Number of generations to step")
	previewCmd.Flags().BoolVar(&flagASCII, "ascii", false, "Print '#' and '.' instead of colored cells")
	previewCmd.Flags().BoolVar(&flagGraph, "graph", false, "Plot the population of every generation")
}

func runPreview(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "")
	cfg, opts, _ := loadSetup(logger)

	if flagGenerations < 0 {
		logger.Warn("negative generations, using 0", "generations", flagGenerations)
		flagGenerations = 0
	}

	p := tui.RunPreview(life.NewGrid(opts.XLen, opts.YLen, opts.Seed), flagGenerations)

	if flagASCII {
		fmt.Println(tui.PlainBoard(p.Grid.Snapshot()))
	} else {
		frame := p.Frame(cfg.Settings(opts.XLen, opts.YLen), opts.Mode)
		fmt.Println(tui.RenderScreen(tui.Layout(frame)))
	}

	fmt.Println()
	fmt.Printf("Seed %d, %dx%d, round %d, %d alive\n",
		opts.Seed, opts.XLen, opts.YLen, p.Rounds, p.Grid.Population())
	if p.Stable {
		fmt.Println("Stable: the last step changed nothing.")
	}

	if flagGraph {
		lines := tui.PopulationPlot(p.Populations, 10, "population")
		if lines == nil {
			fmt.Println("Not enough generations to plot.")
			return
		}
		fmt.Println()
		for _, line := range lines {
			fmt.Println(line)
		}
	}
}
