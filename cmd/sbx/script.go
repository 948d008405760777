package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script <id>",
	Short: "Fetch one script by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := newClient().Script(context.Background(), args[0])
		if err != nil {
			return err
		}
		return printJSON(script)
	},
}

var rawCmd = &cobra.Command{
	Use:   "raw <id>",
	Short: "Fetch the raw content body of one script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := newClient().RawScript(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Println(content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scriptCmd)
	rootCmd.AddCommand(rawCmd)
}
