// Package interactive provides the interactive command-line interface
// for the ev-calc calculator.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/photography-ev/ev-go/pkg/exposure"
	evlog "github.com/photography-ev/ev-go/pkg/log"
	"github.com/photography-ev/ev-go/pkg/profile"
)

// Calculator handles interactive mode for ev-calc.
type Calculator struct {
	prof      *profile.Profile
	logger    evlog.Logger
	sessionID string
	rl        *readline.Instance

	// Session counters for the status command
	calcCount  int
	errorCount int
	startedAt  time.Time
}

// New creates a new interactive calculator handler.
func New(prof *profile.Profile, logger evlog.Logger, sessionID string) (*Calculator, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ev> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Calculator{
		prof:      prof,
		logger:    logger,
		sessionID: sessionID,
		rl:        rl,
		startedAt: time.Now(),
	}, nil
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (c *Calculator) Stdout() io.Writer {
	return c.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the readline input.
func (c *Calculator) Stderr() io.Writer {
	return c.rl.Stderr()
}

// Run starts the interactive command loop.
func (c *Calculator) Run(ctx context.Context, cancel context.CancelFunc) {
	defer c.rl.Close()

	c.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := c.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		parts := strings.Fields(input)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		switch cmd {
		case "help", "?":
			c.printHelp()

		case "ev":
			c.cmdEV(args)

		case "aperture", "ap":
			c.cmdAperture(args)

		case "shutter", "sh":
			c.cmdShutter(args)

		case "stops":
			c.cmdStops(args)

		case "profile":
			c.cmdProfile()

		case "use":
			c.cmdUse(args)

		case "status":
			c.cmdStatus()

		case "quit", "exit", "q":
			fmt.Fprintln(c.rl.Stdout(), "Exiting...")
			cancel()
			return

		default:
			fmt.Fprintf(c.rl.Stdout(), "Unknown command: %s (type 'help' for commands)\n", cmd)
		}
	}
}

func (c *Calculator) printHelp() {
	fmt.Fprintln(c.rl.Stdout(), `
Exposure Calculator Commands:
  Calculations:
    ev <aperture> <time>      - Exposure value for an aperture and shutter pair
    aperture <ev> <time>      - Nearest aperture stop for a target EV
    shutter <ev> <aperture>   - Nearest shutter speed for a target EV

  Stop Tables:
    stops [apertures|times]   - Show the active stop tables
    profile                   - Show the active profile
    use <name-or-file>        - Switch profile (built-in name or YAML file)

  General:
    status             - Show session status
    help               - Show this help
    quit               - Exit calculator

  Notation:
    Apertures accept f-numbers with or without the prefix: f/5.6 or 5.6
    Times accept fractions or decimals: 1/250, 0.5, 30`)
}

// cmdEV handles the ev command.
func (c *Calculator) cmdEV(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: ev <aperture> <time>")
		fmt.Fprintln(c.rl.Stdout(), "  Example: ev f/5.6 1/1000")
		return
	}

	aperture, err := exposure.ParseAperture(args[0])
	if err != nil {
		c.reject(evlog.OpEV, strings.Join(args, " "), err)
		return
	}
	seconds, err := exposure.ParseShutterSpeed(args[1])
	if err != nil {
		c.reject(evlog.OpEV, strings.Join(args, " "), err)
		return
	}

	ev, err := exposure.EV(aperture, seconds)
	if err != nil {
		c.reject(evlog.OpEV, strings.Join(args, " "), err)
		return
	}

	evValue := float64(ev)
	c.record(&evlog.CalcEvent{
		Op:       evlog.OpEV,
		EV:       &evValue,
		Aperture: &aperture,
		Seconds:  &seconds,
	})

	fmt.Fprintf(c.rl.Stdout(), "EV %d  (%s at %ss)\n", ev, exposure.FormatAperture(aperture), exposure.FormatShutterSpeed(seconds))
}

// cmdAperture handles the aperture command.
func (c *Calculator) cmdAperture(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: aperture <ev> <time>")
		fmt.Fprintln(c.rl.Stdout(), "  Example: aperture 9 1/60")
		return
	}

	ev, err := parseEV(args[0])
	if err != nil {
		c.reject(evlog.OpAperture, strings.Join(args, " "), err)
		return
	}
	seconds, err := exposure.ParseShutterSpeed(args[1])
	if err != nil {
		c.reject(evlog.OpAperture, strings.Join(args, " "), err)
		return
	}

	aperture, err := exposure.Aperture(ev, seconds, c.prof.ApertureList())
	if err != nil {
		c.reject(evlog.OpAperture, strings.Join(args, " "), err)
		return
	}

	c.record(&evlog.CalcEvent{
		Op:          evlog.OpAperture,
		EV:          &ev,
		Aperture:    &aperture,
		Seconds:     &seconds,
		CustomStops: c.customApertures(),
	})

	fmt.Fprintf(c.rl.Stdout(), "%s  (EV %s at %ss)\n", exposure.FormatAperture(aperture), formatEV(ev), exposure.FormatShutterSpeed(seconds))
}

// cmdShutter handles the shutter command.
func (c *Calculator) cmdShutter(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: shutter <ev> <aperture>")
		fmt.Fprintln(c.rl.Stdout(), "  Example: shutter 15 f/8")
		return
	}

	ev, err := parseEV(args[0])
	if err != nil {
		c.reject(evlog.OpShutterSpeed, strings.Join(args, " "), err)
		return
	}
	aperture, err := exposure.ParseAperture(args[1])
	if err != nil {
		c.reject(evlog.OpShutterSpeed, strings.Join(args, " "), err)
		return
	}

	seconds, err := exposure.ShutterSpeed(ev, aperture, c.prof.TimeList())
	if err != nil {
		c.reject(evlog.OpShutterSpeed, strings.Join(args, " "), err)
		return
	}

	c.record(&evlog.CalcEvent{
		Op:          evlog.OpShutterSpeed,
		EV:          &ev,
		Aperture:    &aperture,
		Seconds:     &seconds,
		CustomStops: c.customTimes(),
	})

	fmt.Fprintf(c.rl.Stdout(), "%ss  (EV %s at %s)\n", exposure.FormatShutterSpeed(seconds), formatEV(ev), exposure.FormatAperture(aperture))
}

// cmdStops handles the stops command.
func (c *Calculator) cmdStops(args []string) {
	series := ""
	if len(args) > 0 {
		series = strings.ToLower(args[0])
		if series != "apertures" && series != "times" {
			fmt.Fprintf(c.rl.Stdout(), "Unknown series: %s (must be apertures or times)\n", args[0])
			return
		}
	}

	if series == "" || series == "apertures" {
		apertures := c.prof.ApertureList()
		fmt.Fprintf(c.rl.Stdout(), "\nApertures (%d):\n ", len(apertures))
		for _, a := range apertures {
			fmt.Fprintf(c.rl.Stdout(), " %s", exposure.FormatAperture(a))
		}
		fmt.Fprintln(c.rl.Stdout())
	}

	if series == "" || series == "times" {
		times := c.prof.TimeList()
		fmt.Fprintf(c.rl.Stdout(), "\nShutter speeds (%d):\n ", len(times))
		for _, t := range times {
			fmt.Fprintf(c.rl.Stdout(), " %ss", exposure.FormatShutterSpeed(t))
		}
		fmt.Fprintln(c.rl.Stdout())
	}

	fmt.Fprintln(c.rl.Stdout())
}

// cmdProfile shows the active profile.
func (c *Calculator) cmdProfile() {
	fmt.Fprintf(c.rl.Stdout(), "\nProfile: %s\n", c.prof.Name)
	if c.prof.Description != "" {
		fmt.Fprintf(c.rl.Stdout(), "  %s\n", c.prof.Description)
	}

	apertures := c.prof.ApertureList()
	times := c.prof.TimeList()
	fmt.Fprintf(c.rl.Stdout(), "  Apertures:      %d stops (%s .. %s)\n",
		len(apertures),
		exposure.FormatAperture(apertures[0]),
		exposure.FormatAperture(apertures[len(apertures)-1]))
	fmt.Fprintf(c.rl.Stdout(), "  Shutter speeds: %d stops (%ss .. %ss)\n",
		len(times),
		exposure.FormatShutterSpeed(times[0]),
		exposure.FormatShutterSpeed(times[len(times)-1]))
	fmt.Fprintln(c.rl.Stdout())
}

// cmdUse switches the active profile.
func (c *Calculator) cmdUse(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(c.rl.Stdout(), "Usage: use <name-or-file>")
		fmt.Fprintf(c.rl.Stdout(), "  Built-in profiles: %s\n", strings.Join(profile.BuiltinNames(), ", "))
		return
	}

	prof, err := resolveProfile(args[0])
	if err != nil {
		fmt.Fprintf(c.rl.Stdout(), "Failed to load profile: %v\n", err)
		return
	}

	c.prof = prof
	fmt.Fprintf(c.rl.Stdout(), "Switched to profile: %s (%d apertures, %d times)\n",
		prof.Name, len(prof.ApertureList()), len(prof.TimeList()))
}

// cmdStatus shows the session status.
func (c *Calculator) cmdStatus() {
	shortID := c.sessionID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	fmt.Fprintln(c.rl.Stdout(), "\nSession Status")
	fmt.Fprintln(c.rl.Stdout(), "-------------------------------------------")
	fmt.Fprintf(c.rl.Stdout(), "  Session ID:     %s\n", shortID)
	fmt.Fprintf(c.rl.Stdout(), "  Started:        %s\n", c.startedAt.Format("15:04:05"))
	fmt.Fprintf(c.rl.Stdout(), "  Profile:        %s\n", c.prof.Name)
	fmt.Fprintf(c.rl.Stdout(), "  Calculations:   %d\n", c.calcCount)
	if c.errorCount > 0 {
		fmt.Fprintf(c.rl.Stdout(), "  Rejected:       %d\n", c.errorCount)
	}
	fmt.Fprintln(c.rl.Stdout())
}

// customApertures reports whether the profile restricts the aperture series.
func (c *Calculator) customApertures() bool {
	return c.prof.Name != profile.BuiltinFullStop && len(c.prof.Apertures) > 0
}

// customTimes reports whether the profile restricts the shutter speed series.
func (c *Calculator) customTimes() bool {
	return c.prof.Name != profile.BuiltinFullStop && len(c.prof.Times) > 0
}

// record captures a completed calculation.
func (c *Calculator) record(calc *evlog.CalcEvent) {
	c.calcCount++
	c.logger.Log(evlog.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		Category:  evlog.CategoryCalc,
		Source:    evlog.SourceInteractive,
		Profile:   c.prof.Name,
		Calc:      calc,
	})
}

// reject reports invalid input to the user and captures an error event.
func (c *Calculator) reject(op evlog.Operation, input string, err error) {
	c.errorCount++
	fmt.Fprintf(c.rl.Stdout(), "Error: %v\n", err)
	c.logger.Log(evlog.Event{
		Timestamp: time.Now(),
		SessionID: c.sessionID,
		Category:  evlog.CategoryError,
		Source:    evlog.SourceInteractive,
		Profile:   c.prof.Name,
		Error: &evlog.ErrorEventData{
			Op:      op,
			Message: err.Error(),
			Input:   input,
		},
	})
}

// resolveProfile resolves a profile reference. Built-in names take
// precedence; anything else is treated as a YAML file path.
func resolveProfile(name string) (*profile.Profile, error) {
	if p, ok := profile.Builtin(name); ok {
		return p, nil
	}
	return profile.Load(name)
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
