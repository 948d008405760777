// sbx is an operator CLI for poking the ScriptBlox API through the same
// client the service uses: handy for checking whether a deployment is
// blocked, rate limited, or talking to an outdated API version.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"scriptblox-service/internal/providers/scriptblox"
)

var (
	flagBaseURL string
	flagAPIKey  string
	flagTimeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "sbx",
	Short: "Query the ScriptBlox API from the command line",
	Long: `sbx issues one-off requests against the ScriptBlox API using the service's
own client, so results (and failures) match what the relay would see.

Examples:
  sbx search "admin" --max 5
  sbx browse --game 920587237
  sbx script 65a5c6c0ddf7e3bb89b21e6b
  sbx status`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", os.Getenv("SCRIPTBLOX_API_BASE"), "Upstream API base URL")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", os.Getenv("SCRIPTBLOX_API_KEY"), "Bearer credential for the upstream API")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 15*time.Second, "Per-request timeout")
}

func newClient() *scriptblox.Client {
	return scriptblox.NewClient(scriptblox.Config{
		BaseURL:    flagBaseURL,
		APIKey:     flagAPIKey,
		HTTPClient: &http.Client{Timeout: flagTimeout},
	})
}

func printJSON(payload any) error {
	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

// boolFlag returns a pointer only when the flag was set, preserving the
// tri-state filter semantics (set/unset/no preference).
func boolFlag(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &val
}
