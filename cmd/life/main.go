// life draws Conway's Game of Life in the terminal.
//
// Usage:
//
//	life                     - Run a seeded board until quit or stable
//	life preview             - Print a generation without entering raw mode
//	life history             - Browse finished runs
//
// Board flags:
//
//	--x-len <n>     - Board width (default from config: 10)
//	--y-len <n>     - Board height (default from config: 7)
//	--seed <value>  - RNG seed (default from config: 419)
//	--mode <mode>   - pretty or debug
//
// Controls while running:
//
//	Q/Ctrl+C   - Quit
//	Space      - Pause/resume
//	M          - Toggle print mode
//	F          - Toggle the frame cap
//	W/A/S/D    - Move the board (arrow keys work too)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagLogFile string

	// Board flags, kept as raw strings so bad values fall back to defaults
	flagXLen string
	flagYLen string
	flagSeed string
	flagMode string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "life",
	Short: "Conway's Game of Life in your terminal",
	Long: `life seeds a toroidal board from a number and evolves it under the
B3/S23 rule until you quit or a generation stops changing.

Controls:
  Q/Ctrl+C  - Quit
  Space     - Pause/resume
  M         - Toggle pretty/debug mode
  F         - Toggle the ~60Hz frame cap
  W/A/S/D   - Move the board (arrow keys work too)

Examples:
  life
  life --x-len 20 --y-len 12 --seed 7
  life --mode debug
  life preview --seed 55 --x-len 5 --y-len 5
  life history`,
	Args: cobra.NoArgs,
	Run:  runLife,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the board is drawn")

	rootCmd.PersistentFlags().StringVar(&flagXLen, "x-len", "", "Board width in cells")
	rootCmd.PersistentFlags().StringVar(&flagYLen, "y-len", "", "Board height in cells")
	rootCmd.PersistentFlags().StringVar(&flagSeed, "seed", "", "RNG seed for the initial board")
	rootCmd.PersistentFlags().StringVar(&flagMode, "mode", "", "Print mode: pretty, debug")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(historyCmd)
}
