package weather

import "time"

const (
	// MaxForecastDays caps the number of daily summaries
	MaxForecastDays = 5
	// HourlySampleCount is how many leading samples feed the hourly view
	HourlySampleCount = 8
	// HourlyWindowSize is how many hourly samples are shown at once
	HourlyWindowSize = 4
)

// DailySummary aggregates one calendar day of forecast samples
type DailySummary struct {
	Day       string    `json:"day"`
	Date      string    `json:"date"`
	TempMin   float64   `json:"temp_min"`
	TempMax   float64   `json:"temp_max"`
	Condition Condition `json:"condition"`
}

// GroupByDay folds samples into at most MaxForecastDays summaries, in the order days first
// appear. Samples must be ascending by time; they are not re-sorted. The calendar day is taken
// from each sample's own time zone. The representative condition is the first sample's.
func GroupByDay(samples []ForecastSample) []DailySummary {
	summaries := make([]DailySummary, 0, MaxForecastDays)
	index := make(map[string]int, MaxForecastDays)

	for _, sample := range samples {
		date := sample.Time.Format(time.DateOnly)

		if i, seen := index[date]; seen {
			summaries[i].TempMin = min(summaries[i].TempMin, sample.TempMin)
			summaries[i].TempMax = max(summaries[i].TempMax, sample.TempMax)
			continue
		}

		if len(summaries) == MaxForecastDays {
			continue
		}

		index[date] = len(summaries)
		summaries = append(summaries, DailySummary{
			Day:       sample.Time.Format("Mon"),
			Date:      date,
			TempMin:   sample.TempMin,
			TempMax:   sample.TempMax,
			Condition: sample.Condition,
		})
	}

	return summaries
}

// HourlyWindow returns samples[0:HourlySampleCount][start:start+size], shortened instead of
// failing when fewer samples exist.
func HourlyWindow(samples []ForecastSample, start, size int) []ForecastSample {
	hourly := samples[:min(len(samples), HourlySampleCount)]
	start = max(start, 0)
	if size <= 0 || start >= len(hourly) {
		return []ForecastSample{}
	}

	end := min(start+size, len(hourly))
	window := make([]ForecastSample, end-start)
	copy(window, hourly[start:end])
	return window
}

// ClampWindowStart keeps start within [0, max(0, min(total, HourlySampleCount)-size)]
func ClampWindowStart(total, start, size int) int {
	limit := max(0, min(total, HourlySampleCount)-size)
	return min(max(start, 0), limit)
}
