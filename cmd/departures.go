package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/config"
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/exporter"
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var departuresCmd = &cobra.Command{
	Use:   "departures",
	Short: "Show upcoming departures for one or more stations",
	Long:  "Fetches upcoming departures from the VBB API, normalizes them into a delay-annotated board, and prints the table plus an average-delay-per-line chart.",
	RunE: func(cmd *cobra.Command, args []string) error {
		stationFlag, _ := cmd.Flags().GetString("station")
		idFlag, _ := cmd.Flags().GetString("id")
		duration, _ := cmd.Flags().GetInt("duration")
		exportICS, _ := cmd.Flags().GetBool("export-ics")

		savedName := ""
		if stationFlag == "" && idFlag == "" {
			cfg, err := config.Load()
			if err != nil || cfg.DefaultStationID == "" {
				return fmt.Errorf("must specify a station using --station or --id (or save a default via 'vbbdash config --set-station')")
			}
			idFlag = cfg.DefaultStationID
			savedName = cfg.DefaultStationName
		}

		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		if idFlag != "" {
			name := savedName
			if name == "" {
				name = idFlag
			}
			return printBoard(client, idFlag, name, duration, exportICS)
		}

		for _, query := range strings.Split(stationFlag, ",") {
			query = strings.TrimSpace(query)
			if query == "" {
				continue
			}

			station, ok := resolveStation(client, query)
			if !ok {
				fmt.Printf("⚠️ Warning: no station found for '%s'. Skipping.\n", query)
				continue
			}

			if err := printBoard(client, station.ID, station.Name, duration, exportICS); err != nil {
				fmt.Printf("❌ Failed to fetch departures for %s: %v\n", station.Name, err)
			}
			fmt.Println()
		}

		return nil
	},
}

// resolveStation picks the best search match for a free-text query.
func resolveStation(client *transit.Client, query string) (transit.Station, bool) {
	var stations []transit.Station
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Resolving station '%s'...", query)).
		Action(func() {
			stations, err = client.SearchStations(query)
		}).
		Run()

	if err != nil {
		fmt.Printf("⚠️ Station search failed: %v\n", err)
		return transit.Station{}, false
	}
	if len(stations) == 0 {
		return transit.Station{}, false
	}

	// Snag the first/best match
	return stations[0], true
}

func printBoard(client *transit.Client, stationID string, stationName string, durationMinutes int, exportICS bool) error {
	var raws []transit.RawDeparture
	var err error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching departures for %s...", stationName)).
		Action(func() {
			raws, err = client.FetchDepartures(stationID, durationMinutes)
		}).
		Run()

	if err != nil {
		fmt.Printf("⚠️ Could not fetch departures: %v\n", err)
		raws = nil
	}

	records, diags := transit.Normalize(raws)
	for _, d := range diags {
		fmt.Printf("⚠️ %s\n", d)
	}

	fmt.Printf("\n--- 🚆 Departures: %s ---\n", stationName)

	if len(records) == 0 {
		fmt.Printf("No departure data currently available for %s.\n", stationName)
		return nil
	}

	fmt.Println(tui.RenderTable(records))
	fmt.Println("--- Average Delay per Line (Current View) ---")
	fmt.Println(tui.RenderDelayChart(transit.AverageDelayByLine(records)))

	if exportICS {
		filename := fmt.Sprintf("departures_%s.ics", stationID)
		f, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("could not create ics file: %w", err)
		}
		defer f.Close()

		if err := exporter.GenerateICS(stationName, records, time.Now(), f); err != nil {
			return fmt.Errorf("could not export ics file: %w", err)
		}
		fmt.Printf("✨ Exported departure board to: %s\n", filename)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(departuresCmd)
	departuresCmd.Flags().StringP("station", "s", "", "Station search query (comma-separate for multiple boards)")
	departuresCmd.Flags().String("id", "", "Exact stop ID, skipping the search step")
	departuresCmd.Flags().IntP("duration", "d", 60, "How many minutes ahead to look")
	departuresCmd.Flags().BoolP("export-ics", "e", false, "Export the board to a departures_<id>.ics calendar file")
	departuresCmd.Flags().Bool("demo", false, "Serve fixed example data instead of calling the API")
}
