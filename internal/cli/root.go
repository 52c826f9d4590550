// Package cli implements the command-line interface for rustycube.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var dbPath string

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "rustycube",
	Short: "Rubik's cube simulator and move-sequence explorer",
	Long: `Depicts a Rubik's cube of configurable edge length after applying a
sequence of moves, or exhaustively searches for all move sequences that
produce the same result.

A move token is «axis»«layer», where «axis» is one of X, Y, Z, x, y, z:
the rotation axis through the center of the cube, uppercase for +90° and
lowercase for -90°. «layer» is a decimal digit selecting the rotated layer
by its coordinate along the axis, 0 ≤ «layer» < N, with 0 the leftmost /
bottommost / hindmost layer; «layer» = N rotates the whole cube. A prefix
digit 2-9 repeats the move that many times, and '#' comments out the rest
of an argument.

Invoking with a signed edge length runs the simulator directly:
  rustycube 3 2X1 2Y1 2Z1     apply the moves, print the cube net
  rustycube -- -3 2X1 2Y1 2Z1 also search for equivalent sequences`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.rustycube/rustycube.db)")
}

// normalizeArgs routes the bare `rustycube <edge-length> ...` form to the
// run subcommand, guarding a negative edge length from flag parsing.
func normalizeArgs(args []string) []string {
	for i, a := range args {
		if isEdgeLength(a) {
			out := make([]string, 0, len(args)+2)
			out = append(out, "run")
			out = append(out, args[:i]...)
			out = append(out, "--")
			out = append(out, args[i:]...)
			return out
		}
		if !strings.HasPrefix(a, "-") {
			// First positional is a subcommand name.
			break
		}
	}
	return args
}

func isEdgeLength(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}
