package cmd

import (
	"fmt"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for VBB stations by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		var stations []transit.Station
		var searchErr error

		_ = spinner.New().
			Title("Searching for stations...").
			Action(func() {
				stations, searchErr = client.SearchStations(args[0])
			}).
			Run()

		if searchErr != nil {
			fmt.Printf("⚠️ Station search failed: %v\n", searchErr)
			return nil
		}
		if len(stations) == 0 {
			fmt.Println("No stations found matching your query.")
			return nil
		}

		titleCase := cases.Title(language.English)
		for _, st := range stations {
			label := st.Type
			if label == "" {
				label = "location"
			}
			fmt.Printf("%-14s %s (%s)\n", st.ID, st.Name, titleCase.String(label))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("demo", false, "Serve fixed example data instead of calling the API")
}
