package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"

	ics "github.com/arran4/golang-ical"
)

// GenerateICS writes the current departure board as a calendar file: one
// event per departure with a usable expected time. The board only carries
// HH:MM wall-clock strings, so event timestamps are reconstructed on day
// (same-day assumption, like the board's own sort order).
func GenerateICS(stationName string, records []transit.DisplayRecord, day time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	// Timezone location for the VBB network
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	layout := "2006-01-02 15:04"
	dayStr := day.In(loc).Format("2006-01-02")

	for i, rec := range records {
		if rec.Expected == "N/A" {
			continue // Nothing sensible to anchor the event to
		}

		startTime, err := time.ParseInLocation(layout, fmt.Sprintf("%s %s", dayStr, rec.Expected), loc)
		if err != nil {
			continue // Skip invalid times
		}

		event := cal.AddEvent(fmt.Sprintf("%s-%d", startTime.Format("20060102T150405Z"), i))
		event.SetCreatedTime(time.Now())
		event.SetDtStampTime(time.Now())
		event.SetModifiedAt(time.Now())
		event.SetStartAt(startTime)
		event.SetEndAt(startTime.Add(time.Minute))
		event.SetSummary(fmt.Sprintf("%s -> %s", rec.Line, rec.Direction))
		event.SetLocation(fmt.Sprintf("%s (platform %s)", stationName, rec.Platform))

		description := fmt.Sprintf("Scheduled: %s\nExpected: %s\nDelay: %d min", rec.Scheduled, rec.Expected, rec.DelayMinutes)
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
