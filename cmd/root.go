/*
Copyright © 2026 Marco Lopes
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mlopes/yahtzee/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "yahtzee",
	Short: "An interactive multiplayer Yahtzee dice simulator",
	Long: `yahtzee rolls five dice for each player, lets them selectively replace
dice, classifies the final hand into the six scoring categories, and tracks
per-player statistics across repeated games.

Use 'yahtzee play' to start an interactive session or 'yahtzee odds' to
estimate category probabilities offline.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.yahtzee.yaml)")
	rootCmd.PersistentFlags().String("log_file", logging.DefaultFile, "destination file for diagnostic logs")
	rootCmd.PersistentFlags().String("log_level", "info", "diagnostic log level (debug, info, warn, error)")

	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log_file"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log_level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".yahtzee" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".yahtzee")
	}

	viper.SetEnvPrefix("YAHTZEE")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
