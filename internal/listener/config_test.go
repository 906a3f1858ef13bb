package listener

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestNewConfigFillsLoggerDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(Config{Port: 4950})

	require.NoError(t, err)
	want := &Config{Port: 4950, LogFormat: "json", LogLevel: "info"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestNewConfigKeepsExplicitValues(t *testing.T) {
	t.Parallel()

	in := Config{
		Port:            4950,
		LogFormat:       "text",
		LogLevel:        "debug",
		HealthcheckPort: 8080,
		ContractPolicy:  "log",
	}

	cfg, err := NewConfig(in)

	require.NoError(t, err)
	if diff := cmp.Diff(&in, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestNewConfigRejectsOutOfRangePorts(t *testing.T) {
	t.Parallel()

	for _, port := range []int{-1, 0, 65536} {
		_, err := NewConfig(Config{Port: port})
		require.Error(t, err, "port %d", port)
		require.Contains(t, err.Error(), "outside the valid range")
	}
}
