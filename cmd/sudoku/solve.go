package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-wfc/internal/domain"
	"svw.info/sudoku-wfc/internal/render"
	"svw.info/sudoku-wfc/internal/solver"
)

var solveFile string

var solveCmd = &cobra.Command{
	Use:   "solve [puzzle]",
	Short: "Solve a puzzle and print the result",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := puzzleArg(args)
		if err != nil {
			return err
		}

		board := domain.New(g)
		fmt.Println("puzzle:")
		render.Board(os.Stdout, board)

		board.Init()
		branches := solver.Solve(board)

		fmt.Println("result:")
		render.Board(os.Stdout, board)
		fmt.Printf("branches explored: %d\n", branches)

		if !board.Solved() {
			return errors.New("puzzle has no solution")
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "read the puzzle line from a file")
}

// puzzleArg resolves the puzzle from the positional argument, the --file
// flag, or the built-in default, in that order.
func puzzleArg(args []string) (domain.Grid, error) {
	if len(args) == 1 {
		return domain.ParseGrid(strings.TrimSpace(args[0]))
	}
	if solveFile != "" {
		raw, err := os.ReadFile(solveFile)
		if err != nil {
			return domain.Grid{}, err
		}
		return domain.ParseGrid(strings.TrimSpace(string(raw)))
	}
	return defaultPuzzle, nil
}
