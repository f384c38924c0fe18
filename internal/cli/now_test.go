package cli

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNow(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &NowOptions{
		RootOptions: &RootOptions{Format: "text"},
		Clock: func() time.Time {
			return time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
		},
	}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	err := runNow(opts, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Instant:    2000-01-01T12:00:00\nJulian Day: 2451545.000000\n", buf.String())
}

func TestNowHP(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &NowOptions{
		RootOptions: &RootOptions{Format: "text"},
		HP:          true,
		Clock: func() time.Time {
			return time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
		},
	}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	err := runNow(opts, cmd)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Julian Day: 2451545\n")
}

func TestNowJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	opts := &NowOptions{
		RootOptions: &RootOptions{Format: "json"},
		Clock: func() time.Time {
			return time.Date(1957, time.October, 4, 19, 26, 24, 0, time.UTC)
		},
	}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	err := runNow(opts, cmd)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "1957-10-04T19:26:24", data["instant"])
	assert.Equal(t, "2436116.310000", data["julian_day"])
}

// The wall clock is converted in UTC regardless of its zone.
func TestNowConvertsToUTC(t *testing.T) {
	buf := &bytes.Buffer{}
	zone := time.FixedZone("UTC+4", 4*60*60)
	opts := &NowOptions{
		RootOptions: &RootOptions{Format: "text"},
		Clock: func() time.Time {
			return time.Date(2000, time.January, 1, 16, 0, 0, 0, zone)
		},
	}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	err := runNow(opts, cmd)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Julian Day: 2451545.000000\n")
}

func TestNowCommandDefaultClock(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewNowCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Julian Day: ")
}
