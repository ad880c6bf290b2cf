package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"melodyland/internal/game"
)

var flagGap = game.MelodyGap

func init() {
	exportCmd.Flags().DurationVar(&flagGap, "gap", game.MelodyGap, "length of each note")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.mid> <notes...>",
	Short: "Writes a melody to a MIDI file",
	Long: `Writes a Piano Beat Builder melody to a Standard MIDI File, e.g.

  melodyland export twinkle.mid C C G G A A G`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var notes []string
		for _, n := range args[1:] {
			notes = append(notes, strings.Fields(strings.ToUpper(n))...)
		}
		if len(notes) > game.MelodyMaxLength {
			cmd.PrintErrf("melody trimmed to %d notes\n", game.MelodyMaxLength)
			notes = notes[:game.MelodyMaxLength]
		}
		if err := writeMelodyFile(args[0], notes, flagGap); err != nil {
			return err
		}
		cmd.Printf("wrote %s\n", args[0])
		return nil
	},
}
