package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bit-fu/RustyCube/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded search runs",
	Long: `Lists search runs recorded with --save, newest first. With a run ID,
prints that run's solution sequences in discovery order.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewRunRepository(db)
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		seqs, err := repo.Sequences(args[0])
		if err != nil {
			return err
		}
		if len(seqs) == 0 {
			fmt.Fprintf(out, "No sequences recorded for run %s\n", args[0])
			return nil
		}
		for _, s := range seqs {
			fmt.Fprintln(out, s)
		}
		return nil
	}

	runs, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(out, "%s  %s  N=%d  %-24s  %d sequence%s, %d exploratory move%s\n",
			run.RunID,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			run.EdgeLength,
			run.InputMoves,
			run.SequenceCount, plural(uint64(run.SequenceCount)),
			run.ExploratoryMoves, plural(run.ExploratoryMoves))
	}
	return nil
}
