package lookup

import (
	"weatherlookup.app/internal/core/history"
	"weatherlookup.app/internal/core/weather"
)

// View is an immutable snapshot of everything the presentation layer renders
type View struct {
	Query            string                     `json:"query"`
	Current          *weather.CurrentConditions `json:"current"`
	Forecast         []weather.ForecastSample   `json:"forecast"`
	Daily            []weather.DailySummary     `json:"daily"`
	Hourly           []weather.ForecastSample   `json:"hourly"`
	HourlyStart      int                        `json:"hourly_start"`
	CanScrollBack    bool                       `json:"can_scroll_back"`
	CanScrollForward bool                       `json:"can_scroll_forward"`
	Loading          bool                       `json:"loading"`
	Error            string                     `json:"error"`
	History          []history.Entry            `json:"history"`
}

// HasError reports whether the last lookup left a user-visible error
func (v View) HasError() bool {
	return v.Error != ""
}

func buildView(s viewState, entries []history.Entry) View {
	view := View{
		Query:       s.query,
		HourlyStart: s.hourlyStart,
		Loading:     s.loading,
		Error:       s.err,
		Forecast:    []weather.ForecastSample{},
		Daily:       []weather.DailySummary{},
		Hourly:      []weather.ForecastSample{},
		History:     history.DisplayOrder(entries),
	}

	if view.History == nil {
		view.History = []history.Entry{}
	}

	if s.current != nil {
		current := *s.current
		view.Current = &current
	}

	if s.forecast != nil {
		samples := s.forecast.Samples
		view.Forecast = append(view.Forecast, samples...)
		view.Daily = weather.GroupByDay(samples)
		view.Hourly = weather.HourlyWindow(samples, s.hourlyStart, weather.HourlyWindowSize)

		limit := weather.ClampWindowStart(len(samples), len(samples), weather.HourlyWindowSize)
		view.CanScrollBack = s.hourlyStart > 0
		view.CanScrollForward = s.hourlyStart < limit
	}

	return view
}
