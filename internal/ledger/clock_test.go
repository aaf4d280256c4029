package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFixedClockFormatting(t *testing.T) {
	manila := time.FixedZone("PHT", 8*3600)
	c := FixedClock(time.Date(2026, 10, 19, 9, 30, 0, 0, manila))

	require.Equal(t, "2026-10-19T09:30:00.000+08:00", c.Timestamp())
	require.Equal(t, "2026-10-19", c.Today())
	require.Equal(t, "2026-10-12T09:30:00.000+08:00", c.Since(7))
}

func TestTimestampsCompareAsStrings(t *testing.T) {
	earlier := Format(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	later := Format(time.Date(2026, 1, 2, 3, 4, 5, 1e6, time.UTC))
	require.Less(t, earlier, later)
	require.Equal(t, "2026-01-02T03:04:05.000Z", earlier)
}

func TestDay(t *testing.T) {
	require.Equal(t, "2026-10-19", Day("2026-10-19T21:00:00.000+08:00"))
	require.Equal(t, "2026-10-19", Day("2026-10-19"))
	require.Equal(t, "", Day("2026-10"))
}
