package cmd

import (
	"errors"
	"fmt"
	"log"
	"text/tabwriter"

	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"melodyland/internal/results"
)

var (
	flagLimit  int
	shortUnits durafmt.Units
)

func init() {
	shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 20, "how many results to list")
	rootCmd.AddCommand(resultsCmd)
}

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Lists recent finished sessions from the results log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDB == "" {
			return errors.New("no results log: pass --db or set MELODYLAND_DB")
		}
		store, err := results.Open(flagDB, log.New(cmd.ErrOrStderr(), "[results] ", log.LstdFlags))
		if err != nil {
			return err
		}
		defer store.Close()

		list, err := store.Recent(cmd.Context(), flagLimit)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "FINISHED\tGAME\tOUTCOME\tLEVEL\tSCORE\tMOVES\tTIME")
		for _, r := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				r.FinishedAt.Format("2006-01-02 15:04"), r.Game, r.Outcome, r.Level, r.Score, r.Moves,
				durafmt.Parse(r.Duration).LimitFirstN(2).Format(shortUnits))
		}
		return w.Flush()
	},
}
