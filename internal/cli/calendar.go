package cli

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fastipletonis/meeus/julian"
	"github.com/fastipletonis/meeus/temporal"
)

// CalendarOptions holds flags for the calendar command.
type CalendarOptions struct {
	*RootOptions
	HP bool
}

// CalendarResult holds an inverse conversion result.
type CalendarResult struct {
	Input    string `json:"input"`
	DateTime string `json:"date_time"`
	Calendar string `json:"calendar"` // "julian" or "gregorian"
}

// NewCalendarCommand creates the calendar command.
func NewCalendarCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalendarOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "calendar <julian-day>",
		Short: "Convert a Julian Day back to its calendar date",
		Long: `Convert an astronomical Julian Day number back to a calendar date.

Day numbers at or above 2299160.5 land in the Gregorian calendar,
smaller ones in the Julian calendar. Negative day numbers are
rejected. The recovered time of day carries six decimals of the day
fraction, about a tenth of a second.

Examples:
  meeus calendar 2436116.31
  meeus calendar --hp 1842713 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.HP, "hp", false, "use arbitrary-precision arithmetic")

	return cmd
}

func runCalendar(opts *CalendarOptions, text string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var dt temporal.DateTime
	if opts.HP {
		jd, err := decimal.NewFromString(text)
		if err != nil {
			return conversionError(formatter, fmt.Errorf("cannot parse %q as a julian day", text))
		}
		dt, err = julian.DateTimeFromDecimal(jd)
		if err != nil {
			return conversionError(formatter, err)
		}
	} else {
		jd, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return conversionError(formatter, fmt.Errorf("cannot parse %q as a julian day", text))
		}
		dt, err = julian.DateTime(jd)
		if err != nil {
			return conversionError(formatter, err)
		}
	}

	regime := "gregorian"
	if julian.IsJulian(dt.CalendarDate()) {
		regime = "julian"
	}
	formatter.VerboseLog("julian day %s falls in the %s calendar", text, regime)

	result := CalendarResult{Input: text, DateTime: dt.String(), Calendar: regime}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "Date: %s (%s calendar)\n", result.DateTime, result.Calendar)
	return nil
}
