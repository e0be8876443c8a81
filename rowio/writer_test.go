package rowio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		values []any
		want   string
	}{
		{"integers", []any{uint64(5), int64(-7), uint32(0)}, "5,-7,0\n"},
		{"floats shortest form", []any{10.5, 0.1, float32(2.25)}, "10.5,0.1,2.25\n"},
		{"negative zero kept", []any{float64(0) * -1}, "-0\n"},
		{"strings quoted", []any{"open", "a\"b"}, "\"open\",\"a\"b\"\n"},
		{"single value", []any{uint64(42)}, "42\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var w Writer
			w.Format(tt.values...)
			assert.Equal(t, tt.want, w.String())
		})
	}
}

func TestWriterAppends(t *testing.T) {
	t.Parallel()

	var w Writer
	w.Format(uint64(1), 1.5)
	w.Format(uint64(2), 2.5)
	assert.Equal(t, "1,1.5\n2,2.5\n", w.String())
	assert.Equal(t, len("1,1.5\n2,2.5\n"), w.Len())
}

func TestWriterReserve(t *testing.T) {
	t.Parallel()

	var w Writer
	w.Reserve(100)
	assert.Equal(t, 0, w.Len())
	assert.GreaterOrEqual(t, cap(w.Bytes()), 128)

	// Reserving less than current capacity changes nothing.
	w.Format(uint64(1))
	before := w.String()
	w.Reserve(1)
	assert.Equal(t, before, w.String())
}

func TestWriterRoundTrip(t *testing.T) {
	t.Parallel()

	var w Writer
	w.Format(uint64(1755820800), "eur usd", 1.173205)

	rows := NewReaderBytes(w.Bytes()).Rows()
	require.True(t, rows.Next())

	var (
		ts    uint64
		name  string
		price float64
	)
	require.NoError(t, rows.Scan(&ts, &name, &price))
	assert.Equal(t, uint64(1755820800), ts)
	assert.Equal(t, "eur usd", name)
	assert.Equal(t, 1.173205, price)
	assert.False(t, rows.Next())
}

func TestNextPow2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   uint64
		want uint64
	}{
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 4},
		{100, 128},
		{128, 128},
		{129, 256},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextPow2(tt.in), "nextPow2(%d)", tt.in)
	}
}
