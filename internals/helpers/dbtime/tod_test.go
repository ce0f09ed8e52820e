// file: internals/helpers/dbtime/tod_test.go
package dbtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tod, err := Parse("08:30")
	require.NoError(t, err)
	assert.Equal(t, 510, tod.Minutes())
	assert.Equal(t, "08:30", tod.Short())

	tod, err = Parse("23:59:59")
	require.NoError(t, err)
	assert.Equal(t, 23*60+59, tod.Minutes())

	_, err = Parse("bukan jam")
	assert.Error(t, err)
}

func TestScan(t *testing.T) {
	var tod Tod

	require.NoError(t, tod.Scan("07:15:00"))
	assert.Equal(t, "07:15", tod.Short())

	require.NoError(t, tod.Scan([]byte("09:45")))
	assert.Equal(t, "09:45", tod.Short())

	ts := time.Date(2026, 8, 31, 13, 20, 0, 0, time.UTC)
	require.NoError(t, tod.Scan(ts))
	assert.Equal(t, "13:20", tod.Short())

	assert.Error(t, tod.Scan(12345))
}

func TestValue(t *testing.T) {
	tod, err := Parse("08:00")
	require.NoError(t, err)

	v, err := tod.Value()
	require.NoError(t, err)
	assert.Equal(t, "08:00:00", v)

	var zero Tod
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", v)
}

func TestJSONRoundTrip(t *testing.T) {
	tod, err := Parse("14:05")
	require.NoError(t, err)

	b, err := json.Marshal(tod)
	require.NoError(t, err)
	assert.Equal(t, `"14:05:00"`, string(b))

	var back Tod
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, tod.Minutes(), back.Minutes())
}
