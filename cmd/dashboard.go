package cmd

import (
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/tui"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Launch the interactive departure dashboard",
	Long:  `Launch the interactive TUI: search for a VBB station, select a result, and watch upcoming departures with delays and a per-line average-delay chart.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		return tui.RunDashboard(client)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().Bool("demo", false, "Serve fixed example data instead of calling the API")
}
