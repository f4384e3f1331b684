package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse finished runs",
	Long: `Show the run history: every finished run with its seed, board size,
rounds and how it ended.

Examples:
  life history
  life history --plain
  life history --plain --seed 419
  life history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the browser")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runHistory(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr, "")
	cfg, opts, warnings := loadSetup(logger)

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing run history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if !flagPlain && tui.IsTerminal(os.Stdout) {
		width, height := 80, 24
		if w, h, sizeErr := tui.TerminalSize(os.Stdout); sizeErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running history browser: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var runs []storage.RunRecord
	if seed, ok := seedFilter(flagSeed, opts, warnings); ok {
		runs, err = store.RunsBySeed(seed, flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}
	printRuns(runs)

	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Println(tui.StatsSummary(stats))
	}
}

func printRuns(runs []storage.RunRecord) {
	fmt.Println("Run History")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'life' to watch a board evolve!")
		return
	}

	fmt.Printf("  %-20s  %-7s  %-8s  %-6s  %s\n", "Seed", "Board", "Rounds", "End", "Date")
	fmt.Printf("  %-20s  %-7s  %-8s  %-6s  %s\n", "----", "-----", "------", "---", "----")
	for _, r := range runs {
		board := fmt.Sprintf("%dx%d", r.Width, r.Height)
		fmt.Printf("  %-20d  %-7s  %-8d  %-6s  %s\n",
			r.Seed, board, r.Rounds, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
