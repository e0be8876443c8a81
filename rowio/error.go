package rowio

import "fmt"

// Reason classifies why a row failed to parse.
type Reason int

const (
	// MalformedQuote marks a quoted field with no closing quote before
	// the end of the line or buffer.
	MalformedQuote Reason = iota

	// BadFieldCount marks a row whose field count does not match the
	// scan destinations, including stray content after the last field.
	BadFieldCount

	// BadNumber marks a numeric field whose span is not exactly one
	// valid number, or one that overflows the destination.
	BadNumber

	// EmptyField marks a field with no content at all.
	EmptyField
)

func (r Reason) String() string {
	switch r {
	case MalformedQuote:
		return "malformed quote"
	case BadFieldCount:
		return "bad field count"
	case BadNumber:
		return "bad number"
	case EmptyField:
		return "empty field"
	default:
		return "unknown"
	}
}

// ParseError reports the row that failed to scan and why. Row is the
// 0-based ordinal of the row within the buffer.
type ParseError struct {
	Row    int
	Reason Reason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}
