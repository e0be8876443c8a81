package rowio

import (
	"fmt"
	"strconv"
)

// Writer accumulates formatted rows in an in-memory buffer. The zero value
// is ready to use. Writing cannot fail; only flushing to a file can.
type Writer struct {
	buf []byte
}

// Reserve grows the buffer capacity to at least the next power of two not
// below n, so that rows of a known total size append without reallocation.
func (w *Writer) Reserve(n int) {
	if n <= cap(w.buf) {
		return
	}
	grown := make([]byte, len(w.buf), nextPow2(uint64(n)))
	copy(grown, w.buf)
	w.buf = grown
}

// Format appends one row: values joined by commas, terminated by a single
// newline. Integers are written in minimal decimal form, floats with the
// shortest representation that round-trips, and strings are always wrapped
// in double quotes. The writer never escapes string content; callers must
// not pass strings containing quotes or newlines.
//
// Values outside int32/uint32/int64/uint64/int/uint/float32/float64/string
// panic.
func (w *Writer) Format(values ...any) {
	for i, v := range values {
		if i > 0 {
			w.buf = append(w.buf, ',')
		}
		w.appendValue(v)
	}
	w.buf = append(w.buf, '\n')
}

func (w *Writer) appendValue(v any) {
	switch x := v.(type) {
	case int32:
		w.buf = strconv.AppendInt(w.buf, int64(x), 10)
	case uint32:
		w.buf = strconv.AppendUint(w.buf, uint64(x), 10)
	case int64:
		w.buf = strconv.AppendInt(w.buf, x, 10)
	case uint64:
		w.buf = strconv.AppendUint(w.buf, x, 10)
	case int:
		w.buf = strconv.AppendInt(w.buf, int64(x), 10)
	case uint:
		w.buf = strconv.AppendUint(w.buf, uint64(x), 10)
	case float32:
		w.buf = strconv.AppendFloat(w.buf, float64(x), 'f', -1, 32)
	case float64:
		w.buf = strconv.AppendFloat(w.buf, x, 'f', -1, 64)
	case string:
		w.buf = append(w.buf, '"')
		w.buf = append(w.buf, x...)
		w.buf = append(w.buf, '"')
	default:
		panic(fmt.Sprintf("rowio: unsupported field type %T", v))
	}
}

// Bytes returns the accumulated buffer. The slice aliases the writer's
// storage; append more rows only after the caller is done with it.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

// Len returns the number of buffered bytes.
func (w *Writer) Len() int {
	return len(w.buf)
}

func nextPow2(n uint64) uint64 {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
