package candle

// Period is a named aggregation unit. Month and Year are flat
// calendar-free constants (30 and 360 days).
type Period int

const (
	Minute Period = iota
	Hour
	Day
	Month
	Year
)

// ParsePeriod maps one of the literals "minute", "hour", "day", "month"
// or "year" to its Period. The match is exact: no case folding, no
// abbreviations.
func ParsePeriod(text string) (Period, bool) {
	switch text {
	case "minute":
		return Minute, true
	case "hour":
		return Hour, true
	case "day":
		return Day, true
	case "month":
		return Month, true
	case "year":
		return Year, true
	}
	return 0, false
}

// Seconds returns the period length in seconds.
func (p Period) Seconds() uint32 {
	switch p {
	case Minute:
		return 60
	case Hour:
		return 3600
	case Day:
		return 86400
	case Month:
		return 2592000
	case Year:
		return 31104000
	}
	return 0
}

func (p Period) String() string {
	switch p {
	case Minute:
		return "minute"
	case Hour:
		return "hour"
	case Day:
		return "day"
	case Month:
		return "month"
	case Year:
		return "year"
	}
	return "unknown"
}
