package main

import (
	"context"

	"github.com/spf13/cobra"

	"scriptblox-service/internal/providers"
)

var (
	flagPage    int
	flagMax     int
	flagMode    string
	flagSortBy  string
	flagOrder   string
	flagExclude string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search scripts by query",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().IntVar(&flagPage, "page", 1, "Page number")
	searchCmd.Flags().IntVar(&flagMax, "max", 10, "Results per page (capped at 20)")
	searchCmd.Flags().StringVar(&flagMode, "mode", "", "Script mode: free or paid")
	searchCmd.Flags().StringVar(&flagSortBy, "sort", "", "Sort key: views, likeCount, dislikeCount, createdAt, updatedAt, accuracy")
	searchCmd.Flags().StringVar(&flagOrder, "order", "", "Sort order: asc or desc")
	searchCmd.Flags().StringVar(&flagExclude, "exclude", "", "Script id to exclude from results")
	searchCmd.Flags().Bool("verified", false, "Only verified scripts (use =false to invert)")
	searchCmd.Flags().Bool("key", false, "Only scripts with a key system (use =false to invert)")
	searchCmd.Flags().Bool("universal", false, "Only universal scripts (use =false to invert)")
	searchCmd.Flags().Bool("patched", false, "Only patched scripts (use =false to invert)")
	searchCmd.Flags().Bool("strict", false, "Strict query matching")
}

func runSearch(cmd *cobra.Command, args []string) error {
	opts := providers.SearchOptions{
		Mode:      flagMode,
		Verified:  boolFlag(cmd, "verified"),
		Key:       boolFlag(cmd, "key"),
		Universal: boolFlag(cmd, "universal"),
		Patched:   boolFlag(cmd, "patched"),
		SortBy:    flagSortBy,
		Order:     flagOrder,
		Strict:    boolFlag(cmd, "strict"),
		Exclude:   flagExclude,
		Page:      flagPage,
		Max:       flagMax,
	}

	page, err := newClient().Search(context.Background(), args[0], opts)
	if err != nil {
		return err
	}
	return printJSON(page)
}
