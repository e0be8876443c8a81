package rowio

import (
	"fmt"
	"strconv"
	"strings"
)

// Scan parses the current row into dests, which must be pointers from the
// closed set *int32, *uint32, *int64, *uint64, *float32, *float64 and
// *string. The row must hold exactly len(dests) fields separated by single
// commas and end at a newline or at the end of the buffer. Whitespace
// around fields and separators is insignificant.
//
// Numeric fields are converted strictly: the whole span must be one valid
// decimal number for the destination type. String destinations take the
// span verbatim; in quoted fields the "" escape yields a literal quote.
func (rs *Rows) Scan(dests ...any) error {
	for i, dest := range dests {
		span, quoted, escaped, err := rs.scanField()
		if err != nil {
			return err
		}
		if err := rs.convert(span, quoted, escaped, dest); err != nil {
			return err
		}
		rs.pos = skipSpace(rs.text, rs.pos)
		if i == len(dests)-1 {
			if rs.pos < len(rs.text) && rs.text[rs.pos] != '\n' {
				return rs.fail(BadFieldCount)
			}
		} else {
			if rs.pos >= len(rs.text) || rs.text[rs.pos] != ',' {
				return rs.fail(BadFieldCount)
			}
			rs.pos++
			rs.pos = skipSpace(rs.text, rs.pos)
		}
	}
	return nil
}

func (rs *Rows) fail(reason Reason) *ParseError {
	return &ParseError{Row: rs.row, Reason: reason}
}

// scanField consumes one field and returns its span. Quoted spans lie
// strictly between the quotes; bare spans run to the next comma, tab,
// carriage return, newline or end of buffer, with trailing spaces trimmed.
func (rs *Rows) scanField() (span string, quoted, escaped bool, err error) {
	if rs.pos < len(rs.text) && rs.text[rs.pos] == '"' {
		return rs.scanQuoted()
	}
	mark := rs.pos
	for rs.pos < len(rs.text) {
		c := rs.text[rs.pos]
		if c == ',' || c == '\t' || c == '\r' || c == '\n' {
			break
		}
		rs.pos++
	}
	span = strings.TrimRight(rs.text[mark:rs.pos], " ")
	if span == "" {
		return "", false, false, rs.fail(EmptyField)
	}
	return span, false, false, nil
}

func (rs *Rows) scanQuoted() (span string, quoted, escaped bool, err error) {
	rs.pos++
	mark := rs.pos
	for rs.pos < len(rs.text) {
		switch rs.text[rs.pos] {
		case '\n':
			return "", true, false, rs.fail(MalformedQuote)
		case '"':
			if rs.pos+1 < len(rs.text) && rs.text[rs.pos+1] == '"' {
				escaped = true
				rs.pos += 2
				continue
			}
			span = rs.text[mark:rs.pos]
			rs.pos++
			return span, true, escaped, nil
		default:
			rs.pos++
		}
	}
	return "", true, false, rs.fail(MalformedQuote)
}

func (rs *Rows) convert(span string, quoted, escaped bool, dest any) error {
	switch d := dest.(type) {
	case *int32:
		v, err := strconv.ParseInt(span, 10, 32)
		if err != nil {
			return rs.fail(BadNumber)
		}
		*d = int32(v)
	case *uint32:
		v, err := strconv.ParseUint(span, 10, 32)
		if err != nil {
			return rs.fail(BadNumber)
		}
		*d = uint32(v)
	case *int64:
		v, err := strconv.ParseInt(span, 10, 64)
		if err != nil {
			return rs.fail(BadNumber)
		}
		*d = v
	case *uint64:
		v, err := strconv.ParseUint(span, 10, 64)
		if err != nil {
			return rs.fail(BadNumber)
		}
		*d = v
	case *float32:
		v, err := strconv.ParseFloat(span, 32)
		if err != nil {
			return rs.fail(BadNumber)
		}
		*d = float32(v)
	case *float64:
		v, err := strconv.ParseFloat(span, 64)
		if err != nil {
			return rs.fail(BadNumber)
		}
		*d = v
	case *string:
		if quoted && escaped {
			*d = unescapeQuotes(span)
		} else {
			*d = span
		}
	default:
		panic(fmt.Sprintf("rowio: unsupported scan destination %T", dest))
	}
	return nil
}

// unescapeQuotes folds each "" in span to a single quote. Only called for
// spans where an escape was actually seen.
func unescapeQuotes(span string) string {
	var b strings.Builder
	b.Grow(len(span))
	for i := 0; i < len(span); i++ {
		b.WriteByte(span[i])
		if span[i] == '"' {
			i++
		}
	}
	return b.String()
}
