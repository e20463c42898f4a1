package cmd

import (
	"fmt"
	"os"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/config"
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vbbdash",
	Short: "A terminal dashboard for VBB public transport departures",
	Long: `vbbdash monitors near real-time departures and delays for Berlin
and Brandenburg (VBB) stations: search a station, pick a result, and get a
departure board with per-line average delays.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newClient builds the API client, enforcing the configuration policy: a
// missing VBB_API_KEY is fatal unless demo mode was explicitly requested,
// in which case fixed example data is served instead of live calls.
func newClient(cmd *cobra.Command) (*transit.Client, error) {
	demo, _ := cmd.Flags().GetBool("demo")
	if demo {
		fmt.Println("⚠️ Demo mode: serving fixed example data, no live API calls.")
		return transit.NewDemoClient(), nil
	}

	key, err := config.APIKey()
	if err != nil {
		return nil, err
	}
	return transit.NewClient(key), nil
}
