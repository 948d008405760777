package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Sweep the upstream health battery and report per-endpoint results",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := newClient()
	ctx := context.Background()

	report, err := client.CheckHealth(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("overall: %s (%s)\n", report.Status, report.Message)
	for _, ep := range report.Endpoints {
		if ep.OK {
			fmt.Printf("  %-10s ok (%d)\n", ep.Name, ep.StatusCode)
			continue
		}
		if ep.StatusCode > 0 {
			fmt.Printf("  %-10s FAIL (%d): %s\n", ep.Name, ep.StatusCode, ep.Error)
		} else {
			fmt.Printf("  %-10s FAIL: %s\n", ep.Name, ep.Error)
		}
	}

	version, err := client.Version(ctx)
	if err == nil {
		fmt.Printf("upstream version: %s\n", version.Version)
	}
	return nil
}
