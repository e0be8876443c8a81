package candle

import (
	"fmt"
	"io"
)

// Gap is a run of missing buckets inside a series: Buckets consecutive
// buckets of the series period, starting at Start, have no candle.
type Gap struct {
	Start   uint64
	Buckets uint64
}

// SeriesStats summarizes coverage of a constant-period series.
type SeriesStats struct {
	Candles   int
	Period    uint32
	FirstTime uint64
	LastTime  uint64
	Trades    uint64
	Volume    float64
	Expected  uint64 // bucket count over [FirstTime, LastTime]
	Missing   uint64
	Gaps      []Gap
}

// Stats walks a time-ascending series once and reports its coverage.
// Mixed periods are rejected.
func Stats(series []Candle) (SeriesStats, error) {
	var s SeriesStats
	if len(series) == 0 {
		return s, nil
	}
	if !constantPeriod(series) {
		return s, ErrNonConstantPeriod
	}

	first := series[0]
	last := series[len(series)-1]
	span := uint64(first.Period)

	s.Candles = len(series)
	s.Period = first.Period
	s.FirstTime = first.Time
	s.LastTime = last.Time
	s.Expected = (last.Time-first.Time)/span + 1

	prev := first.Time
	for i, each := range series {
		s.Trades += each.Count
		s.Volume += each.Volume
		if i == 0 {
			continue
		}
		if next := prev + span; each.Time > next {
			g := Gap{Start: next, Buckets: (each.Time - next) / span}
			s.Missing += g.Buckets
			s.Gaps = append(s.Gaps, g)
		}
		prev = each.Time
	}

	return s, nil
}

// WriteReport prints a human-readable coverage block.
func (s SeriesStats) WriteReport(w io.Writer) {
	fmt.Fprintln(w, "---- candle series ----")
	fmt.Fprintf(w, "         candles: %d\n", s.Candles)
	fmt.Fprintf(w, "  period seconds: %d\n", s.Period)
	fmt.Fprintf(w, "      first time: %d\n", s.FirstTime)
	fmt.Fprintf(w, "       last time: %d\n", s.LastTime)
	fmt.Fprintf(w, "          trades: %d\n", s.Trades)
	fmt.Fprintf(w, "          volume: %g\n", s.Volume)
	fmt.Fprintf(w, "expected buckets: %d\n", s.Expected)
	fmt.Fprintf(w, " missing buckets: %d\n", s.Missing)
	fmt.Fprintf(w, "            gaps: %d\n", len(s.Gaps))
	for _, g := range s.Gaps {
		fmt.Fprintf(w, "    at %d: %d buckets\n", g.Start, g.Buckets)
	}
	fmt.Fprintln(w, "-----------------------")
}
