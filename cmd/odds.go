/*
Copyright © 2026 Marco Lopes
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mlopes/yahtzee/internal/dice"
	"github.com/mlopes/yahtzee/internal/score"
	"github.com/mlopes/yahtzee/internal/stats"
)

type categoryOdds struct {
	Name    string  `yaml:"name"`
	Count   int     `yaml:"count"`
	Percent float64 `yaml:"percent"`
}

type oddsReport struct {
	Hands      int            `yaml:"hands"`
	Categories []categoryOdds `yaml:"categories"`
}

var oddsCmd = &cobra.Command{
	Use:   "odds",
	Short: "Estimate category odds by simulating random hands",
	Long: `Rolls a number of independent five-die hands without any rerolls,
classifies each one, and reports how often every scoring category came up.
Useful as a baseline when judging your own reroll decisions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		hands, _ := cmd.Flags().GetInt("hands")
		format, _ := cmd.Flags().GetString("format")

		if hands <= 0 {
			return fmt.Errorf("--hands must be positive, got %d", hands)
		}

		results := make([]score.Classification, 0, hands)
		bar := progressbar.Default(int64(hands), "Rolling hands")
		for i := 0; i < hands; i++ {
			results = append(results, score.Classify(dice.Roll()))
			bar.Add(1)
		}

		summary := stats.Tally(results)
		switch format {
		case "text":
			fmt.Println()
			summary.Render(os.Stdout)
			return nil
		case "yaml":
			report := oddsReport{Hands: summary.Total}
			for i, name := range score.Names {
				report.Categories = append(report.Categories, categoryOdds{
					Name:    name,
					Count:   summary.Counts[i],
					Percent: math.Round(summary.Percent(i)*100) / 100,
				})
			}
			enc := yaml.NewEncoder(os.Stdout)
			defer enc.Close()
			return enc.Encode(report)
		default:
			return fmt.Errorf("unknown format %q (want text or yaml)", format)
		}
	},
}

func init() {
	rootCmd.AddCommand(oddsCmd)
	oddsCmd.Flags().IntP("hands", "n", 10000, "number of hands to simulate")
	oddsCmd.Flags().StringP("format", "f", "text", "output format (text or yaml)")
}
