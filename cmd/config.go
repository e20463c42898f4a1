package cmd

import (
	"fmt"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/config"
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage vbbdash configuration",
	Long:  "View or edit your local configuration settings (default station, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setStation, _ := cmd.Flags().GetString("set-station")
		if setStation != "" {
			fmt.Printf("Searching VBB for station: '%s'...\n", setStation)

			client, err := newClient(cmd)
			if err != nil {
				return err
			}

			stations, err := client.SearchStations(setStation)
			if err != nil {
				return fmt.Errorf("could not look up station: %w", err)
			}
			if len(stations) == 0 {
				return fmt.Errorf("no matching stations found for '%s'", setStation)
			}

			// Snag the first/best match
			match := stations[0]
			cfg.DefaultStationID = match.ID
			cfg.DefaultStationName = match.Name

			if err := config.Save(cfg); err != nil {
				return err
			}

			fmt.Printf("✅ Default station successfully saved as: %s (ID: %s)\n", match.Name, match.ID)
			return nil
		}

		// If no flags are given, launch the interactive settings flow
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		return tui.RunSettingsTUI(client)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-station", "", "Set your default station for departure boards")
	configCmd.Flags().Bool("demo", false, "Serve fixed example data instead of calling the API")
}
