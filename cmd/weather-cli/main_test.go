package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherlookup.app/internal/core/history"
	"weatherlookup.app/internal/core/lookup"
)

type stubRunner struct {
	outcome lookup.Outcome
	view    lookup.View
	city    string
	located bool
	shifts  int
}

func (s *stubRunner) SubmitCity(_ context.Context, city string) lookup.Outcome {
	s.city = city
	s.view.Query = city
	return s.outcome
}

func (s *stubRunner) SubmitLocation(context.Context) lookup.Outcome {
	s.located = true
	return s.outcome
}

func (s *stubRunner) NextHours() int {
	s.shifts++
	s.view.HourlyStart = s.shifts
	return s.shifts
}

func (s *stubRunner) View() lookup.View {
	return s.view
}

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "City", args: []string{"-city", "London"}},
		{name: "Here", args: []string{"-here"}},
		{name: "History", args: []string{"-history"}},
		{name: "Nothing", args: nil, wantErr: true},
		{name: "CityAndHere", args: []string{"-city", "London", "-here"}, wantErr: true},
		{name: "NegativeHours", args: []string{"-city", "London", "-hours", "-1"}, wantErr: true},
		{name: "UnknownFlag", args: []string{"-town", "London"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(tt.args, io.Discard)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRun(t *testing.T) {
	t.Run("CitySuccess", func(t *testing.T) {
		runner := &stubRunner{outcome: lookup.OutcomeSuccess}
		var out bytes.Buffer

		code := run(context.Background(), runner, options{city: "London", hours: 2}, &out)

		assert.Equal(t, 0, code)
		assert.Equal(t, "London", runner.city)
		var printed map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
		assert.Equal(t, "London", printed["query"])
		assert.Equal(t, "success", printed["outcome"])
		assert.Equal(t, float64(2), printed["hourly_start"])
	})

	t.Run("HereFailure", func(t *testing.T) {
		runner := &stubRunner{outcome: lookup.OutcomeFailure, view: lookup.View{Error: lookup.MsgLocationUnavailable}}
		var out bytes.Buffer

		code := run(context.Background(), runner, options{here: true}, &out)

		assert.Equal(t, 1, code)
		assert.True(t, runner.located)
		assert.Contains(t, out.String(), lookup.MsgLocationUnavailable)
	})

	t.Run("InvalidCity", func(t *testing.T) {
		runner := &stubRunner{outcome: lookup.OutcomeInvalid}

		code := run(context.Background(), runner, options{city: " "}, io.Discard)

		assert.Equal(t, 2, code)
	})

	t.Run("HistoryOnly", func(t *testing.T) {
		runner := &stubRunner{view: lookup.View{History: []history.Entry{{Name: "Paris", Country: "FR"}}}}
		var out bytes.Buffer

		code := run(context.Background(), runner, options{history: true, hours: 3}, &out)

		assert.Equal(t, 0, code)
		assert.Zero(t, runner.shifts)
		var printed []map[string]interface{}
		require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
		require.Len(t, printed, 1)
		assert.Equal(t, "Paris", printed[0]["name"])
	})
}

func TestRunMain_InvalidArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := runMain([]string{"-city", "London", "-here"}, &stdout, &stderr)

	assert.Equal(t, 2, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "exactly one of -city, -here or -history is required")
}

func TestRunMain_ConfigurationError(t *testing.T) {
	t.Setenv("OPENWEATHERMAP_API_KEY", "")
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })
	var stdout, stderr bytes.Buffer

	code := runMain([]string{"-history"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Failed to initialize application")
}
