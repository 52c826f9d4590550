package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bit-fu/RustyCube/internal/cube"
	"github.com/bit-fu/RustyCube/internal/notation"
	"github.com/bit-fu/RustyCube/internal/search"
	"github.com/bit-fu/RustyCube/internal/storage"
	"github.com/bit-fu/RustyCube/pkg/types"
)

var (
	saveRun     bool
	plainOutput bool
)

var runCmd = &cobra.Command{
	Use:   "run <edge-length> [move-token...]",
	Short: "Apply moves to a cube and depict the result",
	Long: `Applies a sequence of move tokens to a solved cube of the given edge
length and prints the resulting cube as an unfolded net. A negative edge
length additionally searches for all move sequences, no longer than the
input sequence, that produce the same cube state.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&saveRun, "save", false, "Record the search run in the database")
	runCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print the cube net without colors")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	size, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid edge length %q", args[0])
	}

	findMode := false
	if size < 0 {
		findMode = true
		size = -size
	}
	if size < 1 || size > 9 {
		return fmt.Errorf("edge length must be between 1 and 9, got %d", size)
	}

	moves, err := notation.Parse(strings.Join(args[1:], "\n"), size)
	if err != nil {
		return err
	}

	src := cube.New(size)
	dst := src.Clone()
	if err := dst.ApplySeq(moves); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if plainOutput {
		fmt.Fprint(out, dst.String())
	} else {
		fmt.Fprint(out, renderNet(dst))
	}
	fmt.Fprintln(out, notation.Format(moves))

	if !findMode {
		return nil
	}

	result, err := search.Find(src, dst, len(moves))
	if err != nil {
		return err
	}
	printResult(cmd, result)

	if saveRun {
		return persistRun(cmd, size, moves, result)
	}
	return nil
}

// printResult renders the search outcome: a summary line followed by the
// discovered sequences, four per row.
func printResult(cmd *cobra.Command, result *search.Result) {
	out := cmd.OutOrStdout()

	n := len(result.Sequences)
	fmt.Fprintf(out, "%d sequence%s from %d exploratory move%s:\n",
		n, plural(uint64(n)), result.Explored, plural(result.Explored))

	for i, seq := range result.Sequences {
		if i%4 != 0 {
			fmt.Fprint(out, "\t")
		}
		fmt.Fprint(out, notation.Format(seq))
		if i%4 == 3 {
			fmt.Fprintln(out)
		}
	}
	if n%4 != 0 {
		fmt.Fprintln(out)
	}
}

func plural(n uint64) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func persistRun(cmd *cobra.Command, size int, moves []types.Move, result *search.Result) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	seqs := make([]string, len(result.Sequences))
	for i, seq := range result.Sequences {
		seqs[i] = notation.Format(seq)
	}

	repo := storage.NewRunRepository(db)
	id, err := repo.Save(size, notation.Format(moves), len(moves), result.Explored, seqs)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved run %s\n", id)
	return nil
}

// openDB opens the run database from the --db flag or the default path
// and brings its schema up to date.
func openDB() (*storage.DB, error) {
	var db *storage.DB
	var err error
	if dbPath != "" {
		db, err = storage.Open(dbPath)
	} else {
		db, err = storage.OpenDefault()
	}
	if err != nil {
		return nil, err
	}
	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
