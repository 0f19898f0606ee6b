// Command weather-cli runs a single lookup against the configured provider and prints the view state.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"weatherlookup.app/internal/app"
	"weatherlookup.app/internal/core/lookup"
	"weatherlookup.app/pkg/logger"
)

// lookupRunner is the part of the lookup controller the CLI drives
type lookupRunner interface {
	SubmitCity(ctx context.Context, city string) lookup.Outcome
	SubmitLocation(ctx context.Context) lookup.Outcome
	NextHours() int
	View() lookup.View
}

type options struct {
	city    string
	here    bool
	history bool
	hours   int
	timeout time.Duration
}

func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("weather-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.city, "city", "", "look up weather for a city name")
	fs.BoolVar(&opts.here, "here", false, "look up weather for the current position")
	fs.BoolVar(&opts.history, "history", false, "print search history and exit")
	fs.IntVar(&opts.hours, "hours", 0, "advance the hourly window by this many samples")
	fs.DurationVar(&opts.timeout, "timeout", 30*time.Second, "overall lookup timeout")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	selected := 0
	for _, set := range []bool{opts.city != "", opts.here, opts.history} {
		if set {
			selected++
		}
	}
	if selected != 1 {
		return opts, fmt.Errorf("exactly one of -city, -here or -history is required")
	}
	if opts.hours < 0 {
		return opts, fmt.Errorf("-hours cannot be negative")
	}

	return opts, nil
}

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdout, os.Stderr))
}

// runMain owns every resource so its defers run before the process exits
func runMain(args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	_ = godotenv.Load()
	logger.NewWithWriter(stderr, logger.ParseLevel(os.Getenv("LOG_LEVEL"))).
		WithField("component", "weather-cli").
		SetDefault()

	application, err := app.NewApplication()
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	return run(ctx, application.Controller(), opts, stdout)
}

// run executes the selected intent and writes the result as indented JSON
func run(ctx context.Context, controller lookupRunner, opts options, out io.Writer) int {
	var payload interface{}
	outcome := lookup.OutcomeSuccess

	switch {
	case opts.history:
		payload = controller.View().History
	case opts.here:
		outcome = controller.SubmitLocation(ctx)
	default:
		outcome = controller.SubmitCity(ctx, opts.city)
	}

	if payload == nil {
		for i := 0; i < opts.hours; i++ {
			controller.NextHours()
		}
		payload = struct {
			lookup.View
			Outcome lookup.Outcome `json:"outcome"`
		}{controller.View(), outcome}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		slog.Error("Failed to encode output", "error", err)
		return 1
	}

	switch outcome {
	case lookup.OutcomeSuccess:
		return 0
	case lookup.OutcomeInvalid:
		return 2
	default:
		return 1
	}
}
