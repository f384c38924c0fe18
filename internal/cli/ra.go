package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fastipletonis/meeus/rightascension"
	"github.com/fastipletonis/meeus/temporal"
)

// RAOptions holds flags for the ra command.
type RAOptions struct {
	*RootOptions
	Degrees bool
}

// RAResult holds a right-ascension conversion result. Time and
// Degrees are two renderings of the same quantity.
type RAResult struct {
	Time    string `json:"time"`
	Degrees string `json:"degrees"`
}

// clockLayouts are the accepted time-of-day argument forms.
var clockLayouts = []string{"15:04:05.999999999", "15:04"}

// NewRACommand creates the ra command.
func NewRACommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RAOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "ra <time|degrees>",
		Short: "Convert right ascension between time and degrees",
		Long: `Convert a right ascension between its time-of-day and angle forms.

Without flags the argument is a time of day (HH:MM:SS with an
optional fraction, or HH:MM) and the output is the angle in degrees,
15 per hour of time. With --degrees the argument is an angle in
[0, 360) and the output is the time of day.

Examples:
  meeus ra 9:14:55.8
  meeus ra --degrees 138.7325`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRA(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Degrees, "degrees", false, "read the argument as an angle in degrees")

	return cmd
}

func runRA(opts *RAOptions, text string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var result RAResult
	if opts.Degrees {
		deg, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return conversionError(formatter, fmt.Errorf("cannot parse %q as degrees", text))
		}
		t, err := rightascension.Time(deg)
		if err != nil {
			return conversionError(formatter, err)
		}
		result = RAResult{Time: t.String(), Degrees: floatText(deg)}
	} else {
		t, err := parseClock(text)
		if err != nil {
			return conversionError(formatter, err)
		}
		result = RAResult{Time: t.String(), Degrees: floatText(rightascension.Degrees(t))}
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "Time:    %s\n", result.Time)
	fmt.Fprintf(formatter.Writer, "Degrees: %s\n", result.Degrees)
	return nil
}

// parseClock reads a time-of-day argument in any accepted layout.
func parseClock(s string) (temporal.Time, error) {
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return temporal.TimeOf(t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
		}
	}
	return temporal.Time{}, fmt.Errorf("cannot parse %q as a time of day", s)
}
