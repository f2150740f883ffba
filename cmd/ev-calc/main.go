// Command ev-calc is a photographic exposure value calculator.
//
// The calculator works from the standard exposure equation
// EV = log2(N^2 / t) and snaps lookup results to the active stop
// tables. It supports:
//   - EV from an aperture and shutter speed pair
//   - Nearest aperture stop for a target EV and shutter speed
//   - Nearest shutter speed for a target EV and aperture
//   - Custom stop tables via YAML profiles
//   - Structured calculation logging for later analysis with ev-log
//
// Usage:
//
//	ev-calc [flags] <command> [args]
//	ev-calc [flags] -interactive
//
// Commands:
//
//	ev <aperture> <time>       Exposure value for an aperture and shutter pair
//	aperture <ev> <time>       Nearest aperture stop for a target EV
//	shutter <ev> <aperture>    Nearest shutter speed for a target EV
//	stops [apertures|times]    Show the active stop tables
//
// Flags:
//
//	-profile string     Stop profile: built-in name or YAML file path (default "full-stop")
//	-calc-log string    Append calculation events to a CBOR log file
//	-log-level string   Log level: debug, info, warn, error (default "info")
//	-interactive        Start an interactive calculator session
//
// Examples:
//
//	# EV for f/5.6 at 1/1000s
//	ev-calc ev f/5.6 1/1000
//
//	# Nearest aperture for EV 9 at 1/60s
//	ev-calc aperture 9 1/60
//
//	# Use a custom profile and record calculations
//	ev-calc -profile tables/half-stop.yaml -calc-log session.evlog shutter 15 f/8
//
//	# Interactive session with calculation logging
//	ev-calc -calc-log session.evlog -interactive
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/photography-ev/ev-go/cmd/ev-calc/interactive"
	"github.com/photography-ev/ev-go/pkg/exposure"
	evlog "github.com/photography-ev/ev-go/pkg/log"
	"github.com/photography-ev/ev-go/pkg/profile"
)

const usage = `ev-calc - Photographic Exposure Calculator

Usage:
  ev-calc [flags] <command> [args]
  ev-calc [flags] -interactive

Commands:
  ev <aperture> <time>       Exposure value for an aperture and shutter pair
  aperture <ev> <time>       Nearest aperture stop for a target EV
  shutter <ev> <aperture>    Nearest shutter speed for a target EV
  stops [apertures|times]    Show the active stop tables

Use "ev-calc -h" for flag documentation.
`

// Config holds the calculator configuration.
type Config struct {
	Profile     string
	CalcLog     string
	LogLevel    string
	Interactive bool
}

var config Config

func init() {
	flag.StringVar(&config.Profile, "profile", profile.BuiltinFullStop, "Stop profile: built-in name or YAML file path")
	flag.StringVar(&config.CalcLog, "calc-log", "", "Append calculation events to a CBOR log file")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.BoolVar(&config.Interactive, "interactive", false, "Start an interactive calculator session")
}

// Shared session state, assembled in main before dispatch.
var (
	prof       *profile.Profile
	calcLogger evlog.Logger = evlog.NoopLogger{}
	sessionID  string
)

func main() {
	flag.Parse()

	setupLogging(config.LogLevel)

	args := flag.Args()
	if len(args) == 0 && !config.Interactive {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	var err error
	prof, err = resolveProfile(config.Profile)
	if err != nil {
		log.Fatalf("Failed to load profile %q: %v", config.Profile, err)
	}

	// Set up calculation logging if requested
	var fileLogger *evlog.FileLogger
	if config.CalcLog != "" {
		fileLogger, err = evlog.NewFileLogger(config.CalcLog)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to create calculation logger: %v\n", err)
			os.Exit(1)
		}
		// Only assign when non-nil to avoid typed-nil interface issue.
		calcLogger = fileLogger
		log.Printf("Calculation logging to: %s", config.CalcLog)
	}
	defer func() {
		if fileLogger != nil {
			fileLogger.Close()
		}
	}()

	// At debug level, mirror captured events to the console
	if config.LogLevel == "debug" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		calcLogger = evlog.NewMultiLogger(calcLogger, evlog.NewSlogAdapter(slog.New(handler)))
	}

	sessionID = uuid.NewString()

	if config.Interactive {
		ic, err := interactive.New(prof, calcLogger, sessionID)
		if err != nil {
			log.Fatalf("Failed to create interactive calculator: %v", err)
		}
		// Redirect log output through readline to avoid interfering with input
		log.SetOutput(ic.Stdout())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go ic.Run(ctx, cancel)

		// Wait for shutdown signal or context cancellation
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			log.Printf("Received signal: %v", sig)
		case <-ctx.Done():
			// Context was cancelled by the quit command
		}
		return
	}

	if err := runCommand(os.Stdout, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}

// resolveProfile resolves a -profile value. Built-in names take
// precedence; anything else is treated as a YAML file path.
func resolveProfile(name string) (*profile.Profile, error) {
	if p, ok := profile.Builtin(name); ok {
		return p, nil
	}
	return profile.Load(name)
}

// runCommand dispatches a one-shot calculator command.
func runCommand(w io.Writer, args []string) error {
	cmd := strings.ToLower(args[0])

	switch cmd {
	case "ev":
		return cmdEV(w, args[1:])
	case "aperture":
		return cmdAperture(w, args[1:])
	case "shutter":
		return cmdShutter(w, args[1:])
	case "stops":
		return cmdStops(w, args[1:])
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// cmdEV computes the exposure value for an aperture and shutter speed pair.
func cmdEV(w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: ev <aperture> <time>")
	}

	aperture, err := exposure.ParseAperture(args[0])
	if err != nil {
		logCalcError(evlog.OpEV, strings.Join(args, " "), err)
		return err
	}
	seconds, err := exposure.ParseShutterSpeed(args[1])
	if err != nil {
		logCalcError(evlog.OpEV, strings.Join(args, " "), err)
		return err
	}

	ev, err := exposure.EV(aperture, seconds)
	if err != nil {
		logCalcError(evlog.OpEV, strings.Join(args, " "), err)
		return err
	}

	evValue := float64(ev)
	logCalc(&evlog.CalcEvent{
		Op:       evlog.OpEV,
		EV:       &evValue,
		Aperture: &aperture,
		Seconds:  &seconds,
	})

	fmt.Fprintf(w, "EV %d  (%s at %ss)\n", ev, exposure.FormatAperture(aperture), exposure.FormatShutterSpeed(seconds))
	return nil
}

// cmdAperture finds the nearest aperture stop for a target EV and shutter speed.
func cmdAperture(w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: aperture <ev> <time>")
	}

	ev, err := parseEV(args[0])
	if err != nil {
		logCalcError(evlog.OpAperture, strings.Join(args, " "), err)
		return err
	}
	seconds, err := exposure.ParseShutterSpeed(args[1])
	if err != nil {
		logCalcError(evlog.OpAperture, strings.Join(args, " "), err)
		return err
	}

	aperture, err := exposure.Aperture(ev, seconds, prof.ApertureList())
	if err != nil {
		logCalcError(evlog.OpAperture, strings.Join(args, " "), err)
		return err
	}

	logCalc(&evlog.CalcEvent{
		Op:          evlog.OpAperture,
		EV:          &ev,
		Aperture:    &aperture,
		Seconds:     &seconds,
		CustomStops: prof.Name != profile.BuiltinFullStop && len(prof.Apertures) > 0,
	})

	fmt.Fprintf(w, "%s  (EV %s at %ss)\n", exposure.FormatAperture(aperture), formatEV(ev), exposure.FormatShutterSpeed(seconds))
	return nil
}

// cmdShutter finds the nearest shutter speed for a target EV and aperture.
func cmdShutter(w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: shutter <ev> <aperture>")
	}

	ev, err := parseEV(args[0])
	if err != nil {
		logCalcError(evlog.OpShutterSpeed, strings.Join(args, " "), err)
		return err
	}
	aperture, err := exposure.ParseAperture(args[1])
	if err != nil {
		logCalcError(evlog.OpShutterSpeed, strings.Join(args, " "), err)
		return err
	}

	seconds, err := exposure.ShutterSpeed(ev, aperture, prof.TimeList())
	if err != nil {
		logCalcError(evlog.OpShutterSpeed, strings.Join(args, " "), err)
		return err
	}

	logCalc(&evlog.CalcEvent{
		Op:          evlog.OpShutterSpeed,
		EV:          &ev,
		Aperture:    &aperture,
		Seconds:     &seconds,
		CustomStops: prof.Name != profile.BuiltinFullStop && len(prof.Times) > 0,
	})

	fmt.Fprintf(w, "%ss  (EV %s at %s)\n", exposure.FormatShutterSpeed(seconds), formatEV(ev), exposure.FormatAperture(aperture))
	return nil
}

// cmdStops prints the active stop tables.
func cmdStops(w io.Writer, args []string) error {
	series := ""
	if len(args) > 0 {
		series = strings.ToLower(args[0])
		if series != "apertures" && series != "times" {
			return fmt.Errorf("unknown series: %s (must be apertures or times)", args[0])
		}
	}

	fmt.Fprintf(w, "Profile: %s\n", prof.Name)
	if prof.Description != "" {
		fmt.Fprintf(w, "  %s\n", prof.Description)
	}

	if series == "" || series == "apertures" {
		apertures := prof.ApertureList()
		fmt.Fprintf(w, "\nApertures (%d):\n ", len(apertures))
		for _, a := range apertures {
			fmt.Fprintf(w, " %s", exposure.FormatAperture(a))
		}
		fmt.Fprintln(w)
	}

	if series == "" || series == "times" {
		times := prof.TimeList()
		fmt.Fprintf(w, "\nShutter speeds (%d):\n ", len(times))
		for _, t := range times {
			fmt.Fprintf(w, " %ss", exposure.FormatShutterSpeed(t))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// parseEV parses an exposure value argument.
func parseEV(s string) (float64, error) {
	ev, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid EV: %s", s)
	}
	return ev, nil
}

// formatEV renders an EV input for display, dropping a trailing ".0".
func formatEV(ev float64) string {
	return strconv.FormatFloat(ev, 'g', -1, 64)
}

// logCalc records a completed calculation.
func logCalc(calc *evlog.CalcEvent) {
	calcLogger.Log(evlog.Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Category:  evlog.CategoryCalc,
		Source:    evlog.SourceArgs,
		Profile:   prof.Name,
		Calc:      calc,
	})
}

// logCalcError records rejected input.
func logCalcError(op evlog.Operation, input string, err error) {
	calcLogger.Log(evlog.Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Category:  evlog.CategoryError,
		Source:    evlog.SourceArgs,
		Profile:   prof.Name,
		Error: &evlog.ErrorEventData{
			Op:      op,
			Message: err.Error(),
			Input:   input,
		},
	})
}
