package main

import (
	"fmt"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"svw.info/sudoku-wfc/internal/domain"
	"svw.info/sudoku-wfc/internal/solver"
)

var (
	benchDuration time.Duration
	benchProfile  bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [puzzle]",
	Short: "Repeatedly construct and solve a puzzle under a wall-clock budget",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := puzzleArg(args)
		if err != nil {
			return err
		}
		if benchProfile {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}

		iters := 0
		start := time.Now()
		for time.Since(start) < benchDuration {
			b := domain.New(g)
			b.Init()
			solver.Solve(b)
			iters++
		}
		elapsed := time.Since(start)

		fmt.Printf("elapsed: %v\n", elapsed)
		fmt.Printf("iterations: %d\n", iters)
		if iters > 0 {
			fmt.Printf("average: %v\n", elapsed/time.Duration(iters))
		}
		return nil
	},
}

func init() {
	benchCmd.Flags().DurationVarP(&benchDuration, "duration", "d", 5*time.Second, "wall-clock budget")
	benchCmd.Flags().BoolVar(&benchProfile, "cpuprofile", false, "write a CPU profile to the current directory")
}
