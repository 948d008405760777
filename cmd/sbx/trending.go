package main

import (
	"context"

	"github.com/spf13/cobra"
)

var flagTrendingMax int

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Fetch trending scripts (sorted by views, descending)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scripts, err := newClient().Trending(context.Background(), flagTrendingMax)
		if err != nil {
			return err
		}
		return printJSON(scripts)
	},
}

func init() {
	rootCmd.AddCommand(trendingCmd)
	trendingCmd.Flags().IntVar(&flagTrendingMax, "max", 10, "Number of scripts to fetch (capped at 20)")
}
