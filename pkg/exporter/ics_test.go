package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/KeivanDerafshianApply/Berlin-Transport-Dashboard/pkg/transit"
)

func TestGenerateICS(t *testing.T) {
	records := []transit.DisplayRecord{
		{
			Line:         "S1",
			Direction:    "Wannsee",
			Scheduled:    "10:15",
			Expected:     "10:17",
			DelayMinutes: 2,
			Platform:     "4",
		},
		{
			// No usable expected time, must be skipped entirely
			Line:      "U2",
			Direction: "Pankow",
			Scheduled: "N/A",
			Expected:  "N/A",
			Platform:  "N/A",
		},
	}

	day := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := GenerateICS("S Potsdam Hauptbahnhof", records, day, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:S1 -> Wannsee") {
		t.Errorf("Expected ICS to contain departure summary, got: \n%s", output)
	}

	if !strings.Contains(output, "LOCATION:S Potsdam Hauptbahnhof (platform 4)") {
		t.Errorf("Expected ICS to contain station and platform location, got: \n%s", output)
	}

	// 04-Mar-2026 10:17 Berlin time is 09:17 UTC.
	if !strings.Contains(output, "DTSTART:20260304T091700Z") {
		t.Errorf("Expected start time string in ICS (should be UTC), got: \n%s", output)
	}

	if got := strings.Count(output, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("Expected the N/A record to be skipped (1 event), got %d", got)
	}
}

func TestGenerateICS_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateICS("Somewhere", nil, time.Now(), &buf); err != nil {
		t.Fatalf("GenerateICS failed on empty board: %v", err)
	}
	if !strings.Contains(buf.String(), "BEGIN:VCALENDAR") {
		t.Errorf("Expected a valid empty calendar, got: \n%s", buf.String())
	}
}
