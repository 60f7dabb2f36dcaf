package main

import (
	"os"

	"github.com/spf13/cobra"

	"svw.info/sudoku-wfc/internal/domain"
)

// A well-known 17-clue puzzle, used when no puzzle is given.
var defaultPuzzle = domain.Grid{
	{0, 2, 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 6, 0, 0, 0, 0, 3},
	{0, 7, 4, 0, 8, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 3, 0, 0, 2},
	{0, 8, 0, 0, 4, 0, 0, 1, 0},
	{6, 0, 0, 5, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 1, 0, 7, 8, 0},
	{5, 0, 0, 0, 0, 9, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 4, 0},
}

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Wave-function-collapse Sudoku solver",
	Long: `Solves standard 9x9 Sudoku puzzles by constraint propagation with
pure-negative deduction, falling back to backtracking search.

Puzzles are 81-character lines, row-major, with '0' or '.' for blanks.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
