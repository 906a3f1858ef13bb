package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlphabet(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		wantN       int
		wantDone    bool
		wantCode    int
		wantMessage string
	}{
		{
			name:  "lower bound",
			args:  []string{"1"},
			wantN: 1,
		},
		{
			name:  "upper bound",
			args:  []string{"26"},
			wantN: 26,
		},
		{
			name:        "no arguments",
			args:        []string{},
			wantCode:    1,
			wantMessage: "error: Wrong number of arguments provided. Expected=1; Actual=0",
		},
		{
			name:        "too many arguments",
			args:        []string{"1", "2"},
			wantCode:    1,
			wantMessage: "error: Wrong number of arguments provided. Expected=1; Actual=2",
		},
		{
			name:        "partially numeric token",
			args:        []string{"1X"},
			wantCode:    1,
			wantMessage: "error: Unrecognized number, '1X'",
		},
		{
			name:        "non-numeric token",
			args:        []string{"zebra"},
			wantCode:    1,
			wantMessage: "error: Unrecognized number, 'zebra'",
		},
		{
			name:        "below range",
			args:        []string{"0"},
			wantCode:    1,
			wantMessage: "error: Out-of-range number, 0",
		},
		{
			name:        "above range",
			args:        []string{"27"},
			wantCode:    1,
			wantMessage: "error: Out-of-range number, 27",
		},
		{
			name:     "help flag",
			args:     []string{"--help"},
			wantDone: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			n, done, err := ParseAlphabet(tc.args, &out)

			if tc.wantCode != 0 {
				require.Error(t, err)
				var exitErr *ExitError
				require.True(t, errors.As(err, &exitErr))
				assert.Equal(t, tc.wantCode, exitErr.Code)
				assert.Equal(t, tc.wantMessage, exitErr.Message)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantDone, done)
			assert.Equal(t, tc.wantN, n)
		})
	}
}

func TestParseAlphabetHelpPrintsExactlyThreeLines(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	_, done, err := ParseAlphabet([]string{"--help"}, &out)

	require.NoError(t, err)
	require.True(t, done)

	usage := out.String()
	assert.True(t, strings.HasPrefix(usage, "Usage: alphabet"))
	assert.Equal(t, 3, strings.Count(usage, "\n"), "usage text must be exactly three lines")
}
