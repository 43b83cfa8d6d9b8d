package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/advent/internal/platform/tui"
	"github.com/vovakirdan/advent/internal/puzzles/day6"
)

var flagTickRate int

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Animate the day 6 guard patrol",
	Long: `Play the guard's patrol step by step in the terminal.

The map is read from the given file, or from day6.txt in the input directory.

Controls:
  Space    - Pause/resume
  N        - Single step while paused
  +/-      - Faster/slower
  Q/Esc    - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().IntVar(&flagTickRate, "tick-rate", 0, "Steps per second (0 = watch.tick_rate from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		text = string(data)
	} else {
		loaded, err := newLoader().Load(6)
		if err != nil {
			return err
		}
		text = loaded
	}

	sim, err := day6.NewSim(text)
	if err != nil {
		return err
	}

	// The box adds two columns and rows; title, status and help add three lines.
	w, h := sim.Size()
	if tw, th, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w+2 > tw || h+5 > th) {
		logger.Warn("map is larger than the terminal", "map", [2]int{w, h}, "terminal", [2]int{tw, th})
	}

	watchCfg := cfg.Watch
	if flagTickRate > 0 {
		watchCfg.TickRate = flagTickRate
	}
	return tui.RunWatch(day6.New(runtimeConfig()).Title(), sim, watchCfg)
}
