// Package rowio reads and writes compact comma-delimited row text.
//
// A Reader holds one immutable text buffer and hands out row cursors over
// it; fields are converted straight into typed destinations, Scan-style.
// A Writer appends formatted rows to a growable byte buffer. The dialect
// is deliberately small: fields separated by a single comma, rows by a
// single newline, optional whitespace around fields, and double-quoted
// fields with "" as the only escape.
package rowio

// Reader wraps a text buffer for row iteration. The buffer is never
// modified; cursors index into it.
type Reader struct {
	text string
}

// NewReader returns a Reader over text.
func NewReader(text string) *Reader {
	return &Reader{text: text}
}

// NewReaderBytes returns a Reader over data.
func NewReaderBytes(data []byte) *Reader {
	return &Reader{text: string(data)}
}

// Len returns the size of the underlying buffer in bytes.
func (r *Reader) Len() int {
	return len(r.text)
}

// Rows returns a cursor over every row in the buffer.
func (r *Reader) Rows() *Rows {
	rs := &Rows{text: r.text, primed: true}
	rs.pos = skipSpace(rs.text, 0)
	return rs
}

// RowsAfterHeader returns a cursor over every row but the first. The
// header row is skipped without being parsed, so its content is free-form.
func (r *Reader) RowsAfterHeader() *Rows {
	rs := &Rows{text: r.text, primed: true}
	rs.pos = skipSpace(rs.text, 0)
	if rs.pos < len(rs.text) {
		rs.pos = skipLine(rs.text, rs.pos)
		rs.pos = skipSpace(rs.text, rs.pos)
		rs.row = 1
	}
	return rs
}

// Rows is a cursor over the rows of a Reader's buffer. Typical use:
//
//	rows := r.Rows()
//	for rows.Next() {
//		if err := rows.Scan(&a, &b, &c); err != nil {
//			return err
//		}
//	}
type Rows struct {
	text   string
	pos    int
	row    int
	primed bool
}

// Next advances to the start of the next row and reports whether one
// exists. Iteration ends when the cursor reaches the end of the buffer.
func (rs *Rows) Next() bool {
	if rs.primed {
		rs.primed = false
	} else {
		rs.pos = skipLine(rs.text, rs.pos)
		rs.pos = skipSpace(rs.text, rs.pos)
		rs.row++
	}
	return rs.pos < len(rs.text)
}

// Index returns the 0-based ordinal of the current row within the buffer.
// The header row counts, so the index matches the file line.
func (rs *Rows) Index() int {
	return rs.row
}

// skipSpace advances past spaces, tabs and carriage returns. Newlines are
// row terminators and are never skipped here.
func skipSpace(text string, pos int) int {
	for pos < len(text) {
		switch text[pos] {
		case ' ', '\t', '\r':
			pos++
		default:
			return pos
		}
	}
	return pos
}

// skipLine advances past the next newline, or to the end of the buffer.
func skipLine(text string, pos int) int {
	for pos < len(text) {
		if text[pos] == '\n' {
			return pos + 1
		}
		pos++
	}
	return pos
}
