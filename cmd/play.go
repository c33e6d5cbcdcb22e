/*
Copyright © 2026 Marco Lopes
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mlopes/yahtzee/internal/game"
	"github.com/mlopes/yahtzee/internal/logging"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive multiplayer game",
	Long: `Starts an interactive session on the console. Each round, every player
rolls five dice, may replace any of them once, and has the final hand
classified. The session keeps going until a player declines another game,
then prints per-player statistics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(viper.GetString("log_file"), viper.GetString("log_level")); err != nil {
			return err
		}

		sess := game.NewSession(os.Stdin, os.Stdout, logging.L())
		if err := sess.Run(); err != nil {
			logging.L().Error("session aborted", "session_id", sess.ID, "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.SilenceUsage = true
}
