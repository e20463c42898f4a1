package transit

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

var baseURL = "https://v6.vbb.transport.rest"

// ErrNoListFound reports a response body in which no recognizable result
// list was present under any known key. It is deliberately distinct from an
// empty list, which is a valid (if disappointing) answer.
var ErrNoListFound = errors.New("no recognizable list in API response")

const (
	searchResultLimit    = 5
	departureResultLimit = 20
	requestTimeout       = 10 * time.Second
)

// Client interacts with the VBB HAFAS REST API. Calls are synchronous and
// never retried; a failed call is surfaced and the user re-triggers it.
type Client struct {
	httpClient *http.Client
	apiKey     string
	demo       bool
}

// NewClient returns a client authenticating with the given bearer key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		apiKey:     apiKey,
	}
}

// NewDemoClient returns a client that serves fixed example rows instead of
// performing network calls, so the dashboard structure can be exercised
// without a configured API key.
func NewDemoClient() *Client {
	return &Client{demo: true}
}

// Demo reports whether this client serves canned example data.
func (c *Client) Demo() bool {
	return c.demo
}

func (c *Client) get(reqURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, err
	}
	// Public APIs often block default Go user agents
	req.Header.Set("User-Agent", "vbbdash/1.0 (https://github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard)")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}

// SearchStations looks up stations matching a free-text query. At most five
// candidates are returned, in the order the API listed them.
func (c *Client) SearchStations(query string) ([]Station, error) {
	if c.demo {
		return demoStations(), nil
	}

	reqURL := fmt.Sprintf("%s/locations?query=%s&results=%d", baseURL, url.QueryEscape(query), searchResultLimit)
	body, err := c.get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch locations: %w", err)
	}

	list, err := extractList(body, "locations", "stopLocations", "station")
	if err != nil {
		return nil, fmt.Errorf("location search: %w", err)
	}

	var stations []Station
	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		typ, _ := m["type"].(string)
		id := asString(m["id"])
		// Keep only entries that look like a station: an explicit stop
		// marker or at least an identifier to query departures with.
		if typ != "stop" && id == "" {
			continue
		}
		name := asString(m["name"])
		if name == "" {
			name = "Unknown Name"
		}
		stations = append(stations, Station{ID: id, Name: name, Type: typ})
		if len(stations) == searchResultLimit {
			break
		}
	}
	return stations, nil
}

// FetchDepartures returns the raw departure entries for a station within
// the next durationMinutes, unfiltered and in source order.
func (c *Client) FetchDepartures(stationID string, durationMinutes int) ([]RawDeparture, error) {
	if c.demo {
		return demoDepartures(), nil
	}

	reqURL := fmt.Sprintf("%s/stops/%s/departures?duration=%d&results=%d",
		baseURL, url.PathEscape(stationID), durationMinutes, departureResultLimit)
	body, err := c.get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch departures: %w", err)
	}

	list, err := extractList(body, "departures", "journeys", "connections")
	if err != nil {
		return nil, fmt.Errorf("departure fetch: %w", err)
	}

	raws := make([]RawDeparture, 0, len(list))
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			raws = append(raws, RawDeparture(m))
		}
	}
	return raws, nil
}

// extractList finds the result list in a loosely-specified response body:
// either the body is the list itself, or the list sits under one of the
// conventional wrapper keys, tried in order.
func extractList(body []byte, keys ...string) ([]any, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode JSON response: %w", err)
	}

	switch data := payload.(type) {
	case []any:
		return data, nil
	case map[string]any:
		for _, key := range keys {
			if list, ok := data[key].([]any); ok {
				return list, nil
			}
		}
	}
	return nil, ErrNoListFound
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}
