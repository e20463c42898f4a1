package transit

import (
	"fmt"
	"math"
	"sort"
	"time"
)

const notAvailable = "N/A"

// Field alternatives tried in order, covering the key names the VBB API is
// known to use across deployments.
var (
	lineFields      = []fieldPath{{"line", "name"}, {"line", "productName"}}
	directionFields = []fieldPath{{"direction"}, {"destination"}}
	scheduledFields = []fieldPath{{"plannedWhen"}, {"scheduledTime"}}
	expectedFields  = []fieldPath{{"when"}, {"actualTime"}}
	platformFields  = []fieldPath{{"platform"}, {"plannedPlatform"}}
)

// Normalize converts raw departures into the canonical table, sorted
// ascending by expected time. It is pure: no I/O, no retained state. A
// record whose fields are structurally mistyped is dropped and reported in
// the returned diagnostics; it never aborts the remaining records.
func Normalize(raws []RawDeparture) ([]DisplayRecord, []string) {
	records := make([]DisplayRecord, 0, len(raws))
	var diags []string

	for i, raw := range raws {
		rec, err := normalizeOne(raw)
		if err != nil {
			diags = append(diags, fmt.Sprintf("skipping departure record %d: %v", i+1, err))
			continue
		}
		records = append(records, rec)
	}

	sortRecords(records, time.Now())
	return records, diags
}

func normalizeOne(raw RawDeparture) (DisplayRecord, error) {
	line, err := resolveString(raw, notAvailable, lineFields...)
	if err != nil {
		return DisplayRecord{}, err
	}

	direction, err := resolveString(raw, notAvailable, directionFields...)
	if err != nil {
		return DisplayRecord{}, err
	}

	scheduled, schedOK, err := resolveTime(raw, scheduledFields...)
	if err != nil {
		return DisplayRecord{}, err
	}

	expected, expOK, err := resolveTime(raw, expectedFields...)
	if err != nil {
		return DisplayRecord{}, err
	}
	if !expOK {
		expected, expOK = scheduled, schedOK
	}

	delaySeconds, delayKnown, err := resolveDelaySeconds(raw)
	if err != nil {
		return DisplayRecord{}, err
	}

	platform, err := resolveString(raw, notAvailable, platformFields...)
	if err != nil {
		return DisplayRecord{}, err
	}

	delayMinutes := 0
	switch {
	case delayKnown:
		delayMinutes = int(math.Floor(float64(delaySeconds) / 60))
	case schedOK && expOK:
		delayMinutes = int(math.Round(expected.Sub(scheduled).Minutes()))
	}
	// Early departures count as zero delay, not negative.
	if delayMinutes < 0 {
		delayMinutes = 0
	}

	return DisplayRecord{
		Line:         line,
		Direction:    direction,
		Scheduled:    formatClock(scheduled, schedOK),
		Expected:     formatClock(expected, expOK),
		DelayMinutes: delayMinutes,
		Platform:     platform,
	}, nil
}

// formatClock renders the wall-clock time in the offset the API supplied.
func formatClock(t time.Time, ok bool) string {
	if !ok {
		return notAvailable
	}
	return t.Format("15:04")
}

// sortRecords orders the table ascending by expected time. Expected is only
// an HH:MM string at this point, so a same-day timestamp is rebuilt purely
// for comparison; records without a parsable expected time go last. The
// same-day assumption means a window crossing midnight sorts the
// post-midnight departures first (known limitation). If reconstruction
// fails the whole table falls back to a lexicographic sort.
func sortRecords(records []DisplayRecord, now time.Time) {
	type row struct {
		rec   DisplayRecord
		timed bool
		at    time.Time
	}

	day := now.Format("2006-01-02")
	rows := make([]row, 0, len(records))
	for _, rec := range records {
		r := row{rec: rec}
		if rec.Expected != notAvailable {
			t, err := time.ParseInLocation("2006-01-02 15:04", day+" "+rec.Expected, now.Location())
			if err != nil {
				sortRecordsLexicographic(records)
				return
			}
			r.timed, r.at = true, t
		}
		rows = append(rows, r)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].timed != rows[j].timed {
			return rows[i].timed
		}
		if !rows[i].timed {
			return false
		}
		return rows[i].at.Before(rows[j].at)
	})

	for i := range rows {
		records[i] = rows[i].rec
	}
}

func sortRecordsLexicographic(records []DisplayRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Expected != records[j].Expected {
			return records[i].Expected < records[j].Expected
		}
		return records[i].Scheduled < records[j].Scheduled
	})
}
