package rowio

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
)

func TestWriteReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rows.csv")

	var w Writer
	w.Format(uint64(1), 1.5)
	w.Format(uint64(2), 2.5)
	require.NoError(t, w.WriteFile(path))

	r, err := NewReaderFile(path)
	require.NoError(t, err)

	rows := r.Rows()
	var sum float64
	for rows.Next() {
		var n uint64
		var f float64
		require.NoError(t, rows.Scan(&n, &f))
		sum += f
	}
	assert.Equal(t, 4.0, sum)
}

func TestReadFileBOM(t *testing.T) {
	t.Parallel()

	utf16le := func(s string) []byte {
		out := []byte{0xff, 0xfe}
		for _, r := range s {
			out = append(out, byte(r), byte(r>>8))
		}
		return out
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"plain", []byte("1,2\n")},
		{"utf8 bom", []byte("\xef\xbb\xbf1,2\n")},
		{"utf16 le bom", utf16le("1,2\n")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "bom.csv")
			require.NoError(t, os.WriteFile(path, tt.data, 0644))

			r, err := NewReaderFile(path)
			require.NoError(t, err)

			rows := r.Rows()
			require.True(t, rows.Next())
			var a, b uint64
			require.NoError(t, rows.Scan(&a, &b))
			assert.Equal(t, uint64(1), a)
			assert.Equal(t, uint64(2), b)
		})
	}
}

func TestReadFileXZ(t *testing.T) {
	t.Parallel()

	var compressed bytes.Buffer
	zw, err := xz.NewWriter(&compressed)
	require.NoError(t, err)
	_, err = zw.Write([]byte("10,1.5\n20,2.5\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	path := filepath.Join(t.TempDir(), "rows.csv.xz")
	require.NoError(t, os.WriteFile(path, compressed.Bytes(), 0644))

	r, err := NewReaderFile(path)
	require.NoError(t, err)

	rows := r.Rows()
	require.True(t, rows.Next())
	var n uint64
	var f float64
	require.NoError(t, rows.Scan(&n, &f))
	assert.Equal(t, uint64(10), n)
	require.True(t, rows.Next())
	require.NoError(t, rows.Scan(&n, &f))
	assert.Equal(t, 2.5, f)
	assert.False(t, rows.Next())
}

func TestReadFileMissing(t *testing.T) {
	t.Parallel()

	_, err := NewReaderFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}
