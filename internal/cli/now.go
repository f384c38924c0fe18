package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fastipletonis/meeus/julian"
	"github.com/fastipletonis/meeus/temporal"
)

// NowOptions holds flags for the now command.
type NowOptions struct {
	*RootOptions
	HP bool

	// Clock allows overriding the wall clock (for testing).
	// If nil, defaults to time.Now.
	Clock func() time.Time
}

// NowResult holds the Julian Day of the current instant.
type NowResult struct {
	Instant   string `json:"instant"`
	JulianDay string `json:"julian_day"`
}

// NewNowCommand creates the now command.
func NewNowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &NowOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Julian Day of the current UTC instant",
		Long: `Print the astronomical Julian Day number of the current instant.

The wall clock is read once and converted in UTC.

Examples:
  meeus now
  meeus now --hp --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNow(opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.HP, "hp", false, "use arbitrary-precision arithmetic")

	return cmd
}

func runNow(opts *NowOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	dt := temporal.FromTime(clock().UTC())

	result := NowResult{Instant: dt.String()}
	if opts.HP {
		result.JulianDay = decimalText(julian.DecimalDay(dt))
	} else {
		result.JulianDay = floatText(julian.Day(dt))
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "Instant:    %s\n", result.Instant)
	fmt.Fprintf(formatter.Writer, "Julian Day: %s\n", result.JulianDay)
	return nil
}
