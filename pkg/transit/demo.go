package transit

// Fixed example data served in demo mode. The departure rows mirror what a
// real response looks like closely enough to exercise the whole pipeline:
// one on-time S-Bahn and one U-Bahn with a 60 second delay.

func demoStations() []Station {
	return []Station{
		{ID: "900000100001", Name: "Example Station A (Demo)", Type: "stop"},
		{ID: "900000100002", Name: "Example Station B (Demo)", Type: "stop"},
	}
}

func demoDepartures() []RawDeparture {
	return []RawDeparture{
		{
			"line":        map[string]any{"name": "S1"},
			"direction":   "Destination A",
			"when":        "2025-10-26T10:15:00+01:00",
			"plannedWhen": "2025-10-26T10:15:00+01:00",
			"delay":       float64(0),
			"platform":    "1",
		},
		{
			"line":        map[string]any{"name": "U2"},
			"direction":   "Destination B",
			"when":        "2025-10-26T10:18:00+01:00",
			"plannedWhen": "2025-10-26T10:17:00+01:00",
			"delay":       float64(60),
			"platform":    "2",
		},
	}
}
