package collector

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectReportShape(t *testing.T) {
	const limit = 5

	report, err := Collect(context.Background(), limit)
	require.NoError(t, err)
	require.NotNil(t, report)

	// The write path requires a non-empty ip key; localIP falls back to
	// loopback rather than leaving it blank.
	assert.NotEmpty(t, report.IP)

	// Sequence fields start initialized, so a host with no readable
	// partitions or processes still serializes them as [], never null.
	require.NotNil(t, report.Disks)
	require.NotNil(t, report.Processes)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var encoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &encoded))
	assert.NotNil(t, encoded["disks"])
	assert.NotNil(t, encoded["processes"])

	assert.LessOrEqual(t, len(report.Processes), limit)
}

func TestCollectUnlimitedProcesses(t *testing.T) {
	capped, err := Collect(context.Background(), 1)
	require.NoError(t, err)

	uncapped, err := Collect(context.Background(), 0)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(capped.Processes), 1)
	assert.GreaterOrEqual(t, len(uncapped.Processes), len(capped.Processes))
}

func TestGigabytes(t *testing.T) {
	assert.Equal(t, 0.0, gigabytes(0))
	assert.Equal(t, 1.0, gigabytes(1<<30))
	assert.Equal(t, 16.0, gigabytes(16<<30))
}

func TestParseFloatField(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"45", 45, true},
		{" 1530 ", 1530, true},
		{"62.5", 62.5, true},
		{"[N/A]", 0, false},
		{"N/A", 0, false},
		{"", 0, false},
		{"garbage", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseFloatField(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
