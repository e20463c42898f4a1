package transit

import "sort"

// maxChartLines caps the average-delay chart to the worst offenders.
const maxChartLines = 15

// AverageDelayByLine computes the arithmetic mean delay per line over the
// records that are actually delayed. Lines whose departures are all on time
// are excluded entirely rather than shown as zero. The result is sorted
// descending by mean delay (line name breaks ties) and capped at
// maxChartLines entries.
func AverageDelayByLine(records []DisplayRecord) []LineDelay {
	sums := make(map[string]int)
	counts := make(map[string]int)

	for _, rec := range records {
		if rec.DelayMinutes <= 0 {
			continue
		}
		sums[rec.Line] += rec.DelayMinutes
		counts[rec.Line]++
	}

	result := make([]LineDelay, 0, len(sums))
	for line, sum := range sums {
		result = append(result, LineDelay{
			Line:             line,
			MeanDelayMinutes: float64(sum) / float64(counts[line]),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].MeanDelayMinutes != result[j].MeanDelayMinutes {
			return result[i].MeanDelayMinutes > result[j].MeanDelayMinutes
		}
		return result[i].Line < result[j].Line
	})

	if len(result) > maxChartLines {
		result = result[:maxChartLines]
	}
	return result
}
