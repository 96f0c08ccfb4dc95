package cli

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent diff runs",
	Long:  `Lists recently recorded diff runs, newest first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyStore == nil {
		return errors.New("history store not configured")
	}

	runs, err := historyStore.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %-8s  %3d changes  %s -> %s\n",
			run.RanAt.Local().Format(time.DateTime), run.Kind, run.Changes,
			run.OldSource, run.NewSource)
	}
	return nil
}
