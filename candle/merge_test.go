package candle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeDisjoint(t *testing.T) {
	t.Parallel()

	x := minuteCandles(3, 0)    // 0, 60, 120
	y := minuteCandles(2, 180)  // 180, 240

	merged, err := Merge(x, y)
	require.NoError(t, err)
	require.Len(t, merged, 5)
	for i, c := range merged {
		assert.Equal(t, uint64(i)*60, c.Time)
	}

	// Commutative for non-conflicting inputs.
	flipped, err := Merge(y, x)
	require.NoError(t, err)
	assert.Equal(t, merged, flipped)
}

func TestMergeInterleaved(t *testing.T) {
	t.Parallel()

	x := []Candle{
		{Time: 0, Period: 60, Count: 1, Volume: 1, VWAP: 1, Open: 1, High: 1, Low: 1, Close: 1},
		{Time: 120, Period: 60, Count: 1, Volume: 1, VWAP: 3, Open: 3, High: 3, Low: 3, Close: 3},
	}
	y := []Candle{
		{Time: 60, Period: 60, Count: 1, Volume: 1, VWAP: 2, Open: 2, High: 2, Low: 2, Close: 2},
	}

	merged, err := Merge(x, y)
	require.NoError(t, err)
	require.Len(t, merged, 3)
	assert.Equal(t, uint64(0), merged[0].Time)
	assert.Equal(t, uint64(60), merged[1].Time)
	assert.Equal(t, uint64(120), merged[2].Time)
}

func TestMergeIdempotent(t *testing.T) {
	t.Parallel()

	x := minuteCandles(4, 0)

	merged, err := Merge(x, x)
	require.NoError(t, err)
	assert.Equal(t, x, merged)
}

func TestMergeEmpty(t *testing.T) {
	t.Parallel()

	merged, err := Merge(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, merged)

	x := minuteCandles(2, 0)
	merged, err = Merge(x, nil)
	require.NoError(t, err)
	assert.Equal(t, x, merged)

	merged, err = Merge(nil, x)
	require.NoError(t, err)
	assert.Equal(t, x, merged)
}

func TestMergePeriodsMismatch(t *testing.T) {
	t.Parallel()

	x := minuteCandles(1, 0)
	y := []Candle{{Time: 0, Period: 3600, Count: 1, Volume: 1,
		VWAP: 1, Open: 1, High: 1, Low: 1, Close: 1}}

	_, err := Merge(x, y)
	assert.ErrorIs(t, err, ErrMergingPeriodsMismatch)
}

func TestMergeDuplicatedCandle(t *testing.T) {
	t.Parallel()

	x := minuteCandles(2, 0)
	x[1].Time = x[0].Time

	_, err := Merge(x, nil)
	assert.ErrorIs(t, err, ErrDuplicatedCandle)
}

func TestMergeMismatchedCandles(t *testing.T) {
	t.Parallel()

	x := minuteCandles(1, 0)
	y := minuteCandles(1, 0)
	y[0].Close = 2

	_, err := Merge(x, y)
	assert.ErrorIs(t, err, ErrMismatchedCandles)
}
