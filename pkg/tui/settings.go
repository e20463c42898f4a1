package tui

import (
	"fmt"
	"strings"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/config"
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunSettingsTUI launches the interactive experience for managing configuration
func RunSettingsTUI(client *transit.Client) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Default Station", "station"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "station":
			err = runSetDefaultStationTUI(cfg, client)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.vbbdash.json) ---"))
			if cfg.DefaultStationName == "" {
				fmt.Println("Default Station: Not set")
			} else {
				fmt.Printf("Default Station: %s (ID: %s)\n", cfg.DefaultStationName, cfg.DefaultStationID)
			}
			fmt.Printf("Last Query: %s\n", cfg.LastQuery)
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var color string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Accent color (ANSI code or hex, e.g. 33 or #5fafff)").
				Placeholder("33").
				Value(&color),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	color = strings.TrimSpace(color)
	if color == "" {
		return nil
	}

	// Render a quick preview in the chosen color before saving
	previewStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	fmt.Println(previewStyle.Render("\nThis is how your accent color looks."))

	cfg.AccentColor = color
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Accent color saved.\n"))
	return nil
}

func runSetDefaultStationTUI(cfg *config.AppConfig, client *transit.Client) error {
	var query string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search for your default station").
				Placeholder("Enter station name").
				Value(&query),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var stations []transit.Station
	var searchErr error
	_ = spinner.New().
		Title("Searching for stations...").
		Action(func() {
			stations, searchErr = client.SearchStations(query)
		}).
		Run()

	if searchErr != nil {
		fmt.Println(warnStyle.Render("⚠ Station search failed: " + searchErr.Error()))
		return nil
	}
	if len(stations) == 0 {
		fmt.Println(warnStyle.Render("No stations found matching your query."))
		return nil
	}

	options := make([]huh.Option[int], 0, len(stations))
	for i, st := range stations {
		options = append(options, huh.NewOption(st.Name, i))
	}

	var idx int
	selectForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select your default station").
				Options(options...).
				Value(&idx),
		),
	).WithTheme(GetTheme())

	if err := selectForm.Run(); err != nil {
		return err
	}

	cfg.DefaultStationID = stations[idx].ID
	cfg.DefaultStationName = stations[idx].Name
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default station saved: %s (ID: %s)\n", stations[idx].Name, stations[idx].ID)))
	return nil
}
