package main

import (
	"context"

	"github.com/spf13/cobra"

	"scriptblox-service/internal/providers"
)

var (
	flagBrowsePage    int
	flagBrowseMax     int
	flagBrowseMode    string
	flagBrowseSortBy  string
	flagBrowseOrder   string
	flagBrowseExclude string
	flagBrowseGame    string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse scripts without a query, optionally filtered to one game",
	Args:  cobra.NoArgs,
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().IntVar(&flagBrowsePage, "page", 1, "Page number")
	browseCmd.Flags().IntVar(&flagBrowseMax, "max", 10, "Results per page (capped at 20)")
	browseCmd.Flags().StringVar(&flagBrowseGame, "game", "", "Game id to filter by")
	browseCmd.Flags().StringVar(&flagBrowseMode, "mode", "", "Script mode: free or paid")
	browseCmd.Flags().StringVar(&flagBrowseSortBy, "sort", "", "Sort key: views, likeCount, dislikeCount, createdAt, updatedAt")
	browseCmd.Flags().StringVar(&flagBrowseOrder, "order", "", "Sort order: asc or desc")
	browseCmd.Flags().StringVar(&flagBrowseExclude, "exclude", "", "Script id to exclude from results")
	browseCmd.Flags().Bool("verified", false, "Only verified scripts (use =false to invert)")
	browseCmd.Flags().Bool("key", false, "Only scripts with a key system (use =false to invert)")
	browseCmd.Flags().Bool("universal", false, "Only universal scripts (use =false to invert)")
	browseCmd.Flags().Bool("patched", false, "Only patched scripts (use =false to invert)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	opts := providers.BrowseOptions{
		Game:      flagBrowseGame,
		Mode:      flagBrowseMode,
		Verified:  boolFlag(cmd, "verified"),
		Key:       boolFlag(cmd, "key"),
		Universal: boolFlag(cmd, "universal"),
		Patched:   boolFlag(cmd, "patched"),
		SortBy:    flagBrowseSortBy,
		Order:     flagBrowseOrder,
		Exclude:   flagBrowseExclude,
		Page:      flagBrowsePage,
		Max:       flagBrowseMax,
	}

	page, err := newClient().Browse(context.Background(), opts)
	if err != nil {
		return err
	}
	return printJSON(page)
}
