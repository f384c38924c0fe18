package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fastipletonis/meeus/decimaltime"
	"github.com/fastipletonis/meeus/julian"
)

// DayOptions holds flags for the day command.
type DayOptions struct {
	*RootOptions
	HP bool
}

// DayResult holds a forward conversion result.
type DayResult struct {
	Input     string `json:"input"`
	DateTime  string `json:"date_time"`
	JulianDay string `json:"julian_day"`
}

// NewDayCommand creates the day command.
func NewDayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "day <date-time>",
		Short: "Convert a decimal date-time to its Julian Day",
		Long: `Convert a decimal date-time to its astronomical Julian Day number.

The argument uses the notation year-month-day.fraction, where the
fraction is the elapsed part of the day since midnight. Years may be
negative; dates before 15 October 1582 are read in the Julian
calendar. Use "--" before a negative year so it is not taken for a
flag.

Examples:
  meeus day 1957-10-4.81
  meeus day -- -4712-01-01.5
  meeus day --hp 333-1-27.5 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDay(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.HP, "hp", false, "use arbitrary-precision arithmetic")

	return cmd
}

func runDay(opts *DayOptions, text string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	dt, err := decimaltime.ParseDateTime(text)
	if err != nil {
		return conversionError(formatter, err)
	}
	formatter.VerboseLog("parsed %q as %s", text, dt)

	result := DayResult{Input: text, DateTime: dt.String()}
	if opts.HP {
		result.JulianDay = decimalText(julian.DecimalDay(dt))
	} else {
		result.JulianDay = floatText(julian.Day(dt))
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "Julian Day: %s\n", result.JulianDay)
	return nil
}
