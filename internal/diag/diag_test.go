package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineFormat(t *testing.T) {
	t.Parallel()

	got := Line("error", "Out-of-range number, %d", 27)
	require.Equal(t, "error: Out-of-range number, 27", got)
}

func TestEmittersWriteOneTaggedLine(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		emit func(out *bytes.Buffer)
		want string
	}{
		{
			name: "info",
			emit: func(out *bytes.Buffer) { Infof(out, "entering main loop") },
			want: "info: entering main loop\n",
		},
		{
			name: "warning",
			emit: func(out *bytes.Buffer) { Warnf(out, "invalid packet size. expected=%d; actual=%d", 1, 2) },
			want: "warning: invalid packet size. expected=1; actual=2\n",
		},
		{
			name: "error",
			emit: func(out *bytes.Buffer) { Errorf(out, "failed to parse '%s' as port number.", "x") },
			want: "error: failed to parse 'x' as port number.\n",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			tc.emit(&out)
			require.Equal(t, tc.want, out.String())
		})
	}
}
