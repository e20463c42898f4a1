package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/config"
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/exporter"
	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	actionRefresh       = "refresh"
	actionChangeStation = "station"
	actionNewSearch     = "search"
	actionSaveDefault   = "default"
	actionExport        = "export"
	actionQuit          = "quit"
)

// session holds the interaction shell's mutable state. The transit core
// stays pure; everything that persists across prompts lives here. The
// cached table is invalidated by a selection change or an explicit
// refresh, and by nothing else.
type session struct {
	client *transit.Client
	cfg    *config.AppConfig

	query       string
	stations    []transit.Station
	stationID   string
	stationName string

	records    []transit.DisplayRecord
	lineDelays []transit.LineDelay
	diags      []string
}

// RunDashboard drives the interactive search -> select -> refresh loop.
func RunDashboard(client *transit.Client) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println(warnStyle.Render("Could not load saved settings: " + err.Error()))
		cfg = &config.AppConfig{}
	}

	s := &session{client: client, cfg: cfg, query: cfg.LastQuery}
	if s.query == "" {
		s.query = "Potsdam Hbf"
	}
	if cfg.DefaultStationID != "" {
		s.stationID = cfg.DefaultStationID
		s.stationName = cfg.DefaultStationName
	}

	for {
		if s.stationID == "" {
			if err := s.searchAndSelect(); err != nil {
				return err
			}
			if s.stationID == "" {
				continue
			}
		}

		if s.records == nil {
			s.fetchBoard()
		}
		s.renderBoard()

		action, err := s.promptAction()
		if err != nil {
			return err
		}

		switch action {
		case actionRefresh:
			s.records = nil
		case actionChangeStation:
			s.stationID, s.stationName = "", ""
			s.records = nil
		case actionNewSearch:
			s.stations = nil
			s.stationID, s.stationName = "", ""
			s.records = nil
		case actionSaveDefault:
			s.cfg.DefaultStationID = s.stationID
			s.cfg.DefaultStationName = s.stationName
			if err := config.Save(s.cfg); err != nil {
				fmt.Println(errorStyle.Render("Could not save config: " + err.Error()))
			} else {
				fmt.Println(accentStyle.Render(fmt.Sprintf("✅ %s saved as your default station.", s.stationName)))
			}
		case actionExport:
			s.exportBoard()
		case actionQuit:
			return nil
		}
	}
}

// searchAndSelect runs the query prompt and candidate selection. Search
// errors degrade to an empty candidate list plus a warning so the loop can
// simply re-prompt.
func (s *session) searchAndSelect() error {
	if len(s.stations) == 0 {
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Search for a VBB station").
					Placeholder("Enter station name (e.g., Potsdam Hbf)").
					Value(&s.query),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return err
		}
		if strings.TrimSpace(s.query) == "" {
			return nil
		}

		var stations []transit.Station
		var searchErr error
		_ = spinner.New().
			Title("Searching for stations...").
			Action(func() {
				stations, searchErr = s.client.SearchStations(s.query)
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

		s.stations = stations
		s.cfg.LastQuery = s.query
		_ = config.Save(s.cfg)
	}

	titleCase := cases.Title(language.English)
	options := make([]huh.Option[int], 0, len(s.stations))
	for i, st := range s.stations {
		label := st.Name
		if st.Type != "" {
			label = fmt.Sprintf("%s (%s)", st.Name, titleCase.String(st.Type))
		}
		options = append(options, huh.NewOption(label, i))
	}

	var idx int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Select station from results").
				Options(options...).
				Value(&idx),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	s.stationID = s.stations[idx].ID
	s.stationName = s.stations[idx].Name
	s.records = nil // selection change invalidates the cached table
	return nil
}

// fetchBoard fetches and normalizes departures for the selected station.
// Fetch errors degrade to an empty board plus a warning.
func (s *session) fetchBoard() {
	var raws []transit.RawDeparture
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Fetching departures for %s...", s.stationName)).
		Action(func() {
			raws, fetchErr = s.client.FetchDepartures(s.stationID, 60)
		}).
		Run()

	if fetchErr != nil {
		fmt.Println(warnStyle.Render("⚠ Could not fetch departures: " + fetchErr.Error()))
		raws = nil
	}

	s.records, s.diags = transit.Normalize(raws)
	s.lineDelays = transit.AverageDelayByLine(s.records)
}

func (s *session) renderBoard() {
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🚆 Departures: %s ---", s.stationName)))

	for _, d := range s.diags {
		fmt.Println(warnStyle.Render("⚠ " + d))
	}

	if len(s.records) == 0 {
		fmt.Println(warnStyle.Render("No departure data currently available for " + s.stationName + "."))
		return
	}

	fmt.Println(RenderTable(s.records))
	fmt.Println(accentStyle.Render("--- Average Delay per Line (Current View) ---"))
	fmt.Println(RenderDelayChart(s.lineDelays))
}

func (s *session) promptAction() (string, error) {
	var action string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(
					huh.NewOption("🔄 Refresh departures", actionRefresh),
					huh.NewOption("🚉 Change station", actionChangeStation),
					huh.NewOption("🔍 New search", actionNewSearch),
					huh.NewOption("⭐ Save as default station", actionSaveDefault),
					huh.NewOption("📅 Export board to .ics", actionExport),
					huh.NewOption("👋 Quit", actionQuit),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return action, nil
}

func (s *session) exportBoard() {
	if len(s.records) == 0 {
		fmt.Println(warnStyle.Render("Nothing to export yet."))
		return
	}

	filename := fmt.Sprintf("departures_%s.ics", s.stationID)
	f, err := os.Create(filename)
	if err != nil {
		fmt.Println(errorStyle.Render("Could not create file: " + err.Error()))
		return
	}
	defer f.Close()

	if err := exporter.GenerateICS(s.stationName, s.records, time.Now(), f); err != nil {
		fmt.Println(errorStyle.Render("Export failed: " + err.Error()))
		return
	}

	fmt.Println(accentStyle.Render("✨ Exported departure board to: " + filename))
}
