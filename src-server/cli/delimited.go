package cli

import (
	"strings"
	"sylcal/src-server/metric"
	"sylcal/src-server/render"
	"sylcal/src-server/utils"
	"time"

	"github.com/spf13/cobra"
)

type delimitedOptions struct {
	output   string
	now      string
	timezone string
}

func newDelimitedCommand(newAppState func() *utils.AppState) *cobra.Command {
	opts := &delimitedOptions{}
	cmd := &cobra.Command{
		Use:   "delimited <title, date, start-end, location, notes>",
		Short: "Parse a five-field comma-separated event",
		Long: `Parse a strict five-field event string:

  title, date, start-end, location, notes

Exactly five comma-separated fields are required and the time range must use
a hyphen between start and end.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			as := newAppState()
			format, err := render.ParseFormat(opts.output)
			if err != nil {
				return err
			}
			// --timezone is applied by ParseDelimited itself
			p, err := commandParser(as, opts.now, "")
			if err != nil {
				return err
			}

			startTimer := time.Now()
			payload, err := p.ParseDelimited(utils.CleanupString(strings.Join(args, " ")), opts.timezone)
			as.Metric.Observe(metric.EntryDelimited, startTimer, err)
			if err != nil {
				return err
			}
			return render.Write(cmd.OutOrStdout(), format, payload)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "json", "output format: json, yaml or ics")
	cmd.Flags().StringVar(&opts.now, "now", "", "reference time for relative dates, RFC 3339 (default: current time)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "IANA timezone for the event (default: TIMEZONE env)")
	return cmd
}
