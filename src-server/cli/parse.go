package cli

import (
	"fmt"
	"strings"
	"sylcal/src-server/metric"
	"sylcal/src-server/parser"
	"sylcal/src-server/render"
	"sylcal/src-server/utils"
	"time"

	"github.com/spf13/cobra"
)

type parseOptions struct {
	output   string
	now      string
	timezone string
}

func newParseCommand(newAppState func() *utils.AppState) *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <line>",
		Short: "Parse one line of free syllabus text",
		Long: `Parse one line of free syllabus text into an event.

The title is the text before the first colon (or comma, or the first word),
the date is the first date expression in the line, a "2–3:30pm" style range
sets start and end, and the text after the last comma is the location.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, newAppState(), opts, strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "output format: json, yaml or ics")
	cmd.Flags().StringVar(&opts.now, "now", "", "reference time for relative dates, RFC 3339 (default: current time)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "IANA timezone for the event (default: TIMEZONE env)")
	return cmd
}

func runParse(cmd *cobra.Command, as *utils.AppState, opts *parseOptions, line string) error {
	format, err := render.ParseFormat(opts.output)
	if err != nil {
		return err
	}
	p, err := commandParser(as, opts.now, opts.timezone)
	if err != nil {
		return err
	}

	startTimer := time.Now()
	event, err := p.ParseLine(utils.CleanupString(line))
	as.Metric.Observe(metric.EntryLine, startTimer, err)
	if err != nil {
		return err
	}
	return render.Write(cmd.OutOrStdout(), format, event)
}

// Parser for one command run, honoring --now and --timezone. Anything not
// overridden comes from the app's parser.
func commandParser(as *utils.AppState, now, timezone string) (*parser.Parser, error) {
	loc := as.Parser.GetLocation()
	if timezone != "" {
		var err error
		if loc, err = time.LoadLocation(timezone); err != nil {
			return nil, fmt.Errorf("invalid --timezone: %w", err)
		}
	}
	opts := []parser.Option{
		parser.WithLocation(loc),
		parser.WithDefaultDuration(as.Parser.GetDefaultDuration()),
	}
	if now != "" {
		reference, err := time.Parse(time.RFC3339, now)
		if err != nil {
			return nil, fmt.Errorf("invalid --now: %w", err)
		}
		opts = append(opts, parser.WithNow(func() time.Time { return reference }))
	}
	return parser.New(as.Resolver, opts...), nil
}
