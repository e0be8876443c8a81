package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortfero/swollencandle/candle"
)

func tempStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "candles.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleCandles(n int) []candle.Candle {
	out := make([]candle.Candle, n)
	for i := range out {
		price := 1.17 + float64(i)/1000
		out[i] = candle.Candle{
			Time:   uint64(1609459200 + i*60),
			Period: 60,
			Count:  uint64(i + 1),
			Volume: float64(i) + 0.5,
			VWAP:   price,
			Open:   price,
			High:   price + 0.0001,
			Low:    price - 0.0001,
			Close:  price,
		}
	}
	return out
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	candles := sampleCandles(10)

	ds, err := s.SaveCandles("eurusd-m1", candles)
	require.NoError(t, err)
	assert.Equal(t, "eurusd-m1", ds.Name)
	assert.Equal(t, uint32(60), ds.Period)
	assert.Equal(t, 10, ds.Candles)
	assert.Len(t, ds.ID, 26)
	assert.WithinDuration(t, time.Now().UTC(), ds.Created, time.Minute)

	loaded, err := s.LoadCandles("eurusd-m1")
	require.NoError(t, err)
	assert.Equal(t, candles, loaded)
}

func TestSaveRejectsEmpty(t *testing.T) {
	t.Parallel()

	s := tempStore(t)

	_, err := s.SaveCandles("empty", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestSaveRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	s := tempStore(t)
	candles := sampleCandles(2)

	_, err := s.SaveCandles("twice", candles)
	require.NoError(t, err)

	_, err = s.SaveCandles("twice", candles)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "twice")
}

func TestLoadUnknown(t *testing.T) {
	t.Parallel()

	s := tempStore(t)

	_, err := s.LoadCandles("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent")
}

func TestListDatasets(t *testing.T) {
	t.Parallel()

	s := tempStore(t)

	_, err := s.SaveCandles("bbb", sampleCandles(3))
	require.NoError(t, err)
	_, err = s.SaveCandles("aaa", sampleCandles(5))
	require.NoError(t, err)

	datasets, err := s.ListDatasets()
	require.NoError(t, err)
	require.Len(t, datasets, 2)
	assert.Equal(t, "aaa", datasets[0].Name)
	assert.Equal(t, 5, datasets[0].Candles)
	assert.Equal(t, "bbb", datasets[1].Name)
	assert.Equal(t, 3, datasets[1].Candles)
}

func TestDeleteDataset(t *testing.T) {
	t.Parallel()

	s := tempStore(t)

	_, err := s.SaveCandles("keep", sampleCandles(2))
	require.NoError(t, err)
	_, err = s.SaveCandles("drop", sampleCandles(2))
	require.NoError(t, err)

	require.NoError(t, s.DeleteDataset("drop"))

	_, err = s.LoadCandles("drop")
	assert.Error(t, err)

	kept, err := s.LoadCandles("keep")
	require.NoError(t, err)
	assert.Len(t, kept, 2)

	// The name is free again after deletion.
	_, err = s.SaveCandles("drop", sampleCandles(1))
	assert.NoError(t, err)

	assert.Error(t, s.DeleteDataset("absent"))
}
