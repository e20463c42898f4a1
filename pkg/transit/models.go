package transit

// Station is a search candidate returned by the /locations lookup,
// reduced to what the dashboard needs to query departures.
type Station struct {
	ID   string
	Name string
	Type string // raw discriminator from the API, e.g. "stop"
}

// RawDeparture is a single departure entry exactly as the API sent it.
// The VBB response schema is loosely specified, so no field is guaranteed
// present or well-typed; the normalizer resolves keys defensively.
type RawDeparture map[string]any

// DisplayRecord is the canonical, display-ready form of one departure.
// It is immutable after normalization and rebuilt on every fetch.
type DisplayRecord struct {
	Line         string // "N/A" if unresolvable
	Direction    string // "N/A" if unresolvable
	Scheduled    string // HH:MM or "N/A"
	Expected     string // HH:MM or "N/A", falls back to Scheduled
	DelayMinutes int    // never negative, 0 when unknown
	Platform     string // "N/A" if unresolvable
}

// LineDelay is one row of the average-delay-per-line aggregation.
type LineDelay struct {
	Line             string
	MeanDelayMinutes float64
}
