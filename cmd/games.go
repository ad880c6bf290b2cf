package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"melodyland/internal/game"
)

func init() {
	rootCmd.AddCommand(gamesCmd)
}

var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Lists the games",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSYMBOLS\tDESCRIPTION")
		for _, info := range game.Catalog {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.ID, info.Title, strings.Join(info.Tones.Symbols(), " "), info.Description)
		}
		return w.Flush()
	},
}
