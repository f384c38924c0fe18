package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fastipletonis/meeus/decimaltime"
	"github.com/fastipletonis/meeus/julian"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions
	HP bool
}

// BatchEntry is one date-time in a batch input file.
type BatchEntry struct {
	// Name labels the entry in reports. Optional; defaults to the
	// date-time text.
	Name string `yaml:"name,omitempty"`

	// DateTime is the decimal date-time to convert.
	DateTime string `yaml:"date_time"`
}

// BatchRow holds the conversion result for a single entry.
type BatchRow struct {
	Name      string `json:"name"`
	Input     string `json:"input"`
	DateTime  string `json:"date_time,omitempty"`
	JulianDay string `json:"julian_day,omitempty"`
	Code      string `json:"code,omitempty"`
	Error     string `json:"error,omitempty"`
}

// BatchResult holds the overall batch outcome.
type BatchResult struct {
	Rows      []BatchRow `json:"rows"`
	Converted int        `json:"converted"`
	Failed    int        `json:"failed"`
	Total     int        `json:"total"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Convert a file of decimal date-times",
		Long: `Convert every decimal date-time in a YAML batch file.

The file holds a list of entries:

  - name: sputnik
    date_time: 1957-10-4.81
  - name: epoch
    date_time: "-4712-01-01.5"

Unknown fields are rejected. Entries that fail to convert are
reported and the remaining entries still run.

Exit codes:
  0 - All entries converted
  1 - One or more entries failed
  2 - Command error (unreadable or malformed file)

Examples:
  meeus batch observations.yaml
  meeus batch observations.yaml --hp --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.HP, "hp", false, "use arbitrary-precision arithmetic")

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	entries, err := loadBatch(path)
	if err != nil {
		return inputError(formatter, err.Error(), err)
	}
	formatter.VerboseLog("loaded %d entries from %s", len(entries), path)

	if len(entries) == 0 {
		if formatter.Format == "json" {
			return formatter.Success(BatchResult{Rows: []BatchRow{}})
		}
		fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
		return nil
	}

	result := BatchResult{
		Rows:  make([]BatchRow, 0, len(entries)),
		Total: len(entries),
	}
	for _, entry := range entries {
		row := convertEntry(entry, opts.HP)
		result.Rows = append(result.Rows, row)

		if row.Error == "" {
			result.Converted++
		} else {
			result.Failed++
		}
	}

	if formatter.Format == "json" {
		return outputBatchJSON(cmd, result)
	}
	return outputBatchText(cmd, result)
}

// loadBatch reads and parses a batch input file.
func loadBatch(path string) ([]BatchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "datetime:")
	var entries []BatchEntry
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	for i, entry := range entries {
		if entry.DateTime == "" {
			return nil, fmt.Errorf("invalid batch file: entries[%d]: date_time is required", i)
		}
	}

	return entries, nil
}

// convertEntry converts a single batch entry.
func convertEntry(entry BatchEntry, hp bool) BatchRow {
	row := BatchRow{Name: entry.Name, Input: entry.DateTime}
	if row.Name == "" {
		row.Name = entry.DateTime
	}

	dt, err := decimaltime.ParseDateTime(entry.DateTime)
	if err != nil {
		row.Code = errorCode(err)
		row.Error = err.Error()
		return row
	}

	row.DateTime = dt.String()
	if hp {
		row.JulianDay = decimalText(julian.DecimalDay(dt))
	} else {
		row.JulianDay = floatText(julian.Day(dt))
	}
	return row
}

// outputBatchText renders the batch result as a table.
func outputBatchText(cmd *cobra.Command, result BatchResult) error {
	w := cmd.OutOrStdout()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Date Time", "Julian Day"})
	table.SetBorder(false)
	table.SetCenterSeparator("|")
	table.SetColumnSeparator("|")
	table.SetRowSeparator("-")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)

	for _, row := range result.Rows {
		if row.Error != "" {
			table.Append([]string{row.Name, row.Input, "error"})
			continue
		}
		table.Append([]string{row.Name, row.DateTime, row.JulianDay})
	}
	table.Render()

	for _, row := range result.Rows {
		if row.Error != "" {
			fmt.Fprintf(w, "✗ %s: [%s] %s\n", row.Name, row.Code, row.Error)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Batch Summary: %d converted, %d failed, %d total\n", result.Converted, result.Failed, result.Total)

	if result.Failed > 0 {
		// Conversion failures = exit code 1
		return NewExitError(ExitFailure, fmt.Sprintf("%d entry(s) failed", result.Failed))
	}

	fmt.Fprintln(w, "✓ All entries converted")
	return nil
}

// outputBatchJSON outputs the batch result as JSON.
func outputBatchJSON(cmd *cobra.Command, result BatchResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}

	response := CLIResponse{
		Status: status,
		Data:   result,
	}

	if result.Failed > 0 {
		for _, row := range result.Rows {
			if row.Error != "" {
				response.Error = &CLIError{
					Code:    row.Code,
					Message: fmt.Sprintf("%d entry(s) failed", result.Failed),
				}
				break
			}
		}
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(response); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d entry(s) failed", result.Failed))
	}
	return nil
}
