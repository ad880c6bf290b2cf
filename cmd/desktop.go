package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"melodyland/internal/desktop"
	"melodyland/internal/game"
)

var flagGame string

func init() {
	desktopCmd.Flags().StringVar(&flagGame, "game", "rhythm", "game shown first; Tab cycles through the rest")
	rootCmd.AddCommand(desktopCmd)
}

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Plays the games in a window",
	Long: `Opens a window with every game. Tab switches game.

  Rhythm Master    1-4 pads, Space start, R reset, Esc dismiss
  Pitch Perfect    C D E F G A B, P replay, Space start, R reset
  Music Memory     click cards, R restart
  Beat Builder     C D E F G A B, Enter play, Backspace clear
  Virtual Piano    A W S E D F T G Y H U J, or click keys`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, ok := game.Lookup(flagGame); !ok {
			return fmt.Errorf("%w: %q", game.ErrUnknownGame, flagGame)
		}
		a, err := newApp(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		ctx, loop, stop := a.start(cmd.Context(), os.Interrupt)
		defer stop()

		return desktop.Run(ctx, desktop.Config{
			Loop:   loop,
			Env:    a.env,
			Game:   flagGame,
			Logger: log.New(cmd.ErrOrStderr(), "[desktop] ", log.LstdFlags),
		})
	},
}
