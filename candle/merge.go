package candle

import "sort"

// Merge unions two candle series keyed by time. A time present in both
// series must carry field-for-field identical candles; identical
// duplicates collapse silently, differing ones are a conflict. Two
// non-empty series must share one period. The result is sorted
// ascending by time.
func Merge(x, y []Candle) ([]Candle, error) {
	if len(x) != 0 && len(y) != 0 && x[0].Period != y[0].Period {
		return nil, ErrMergingPeriodsMismatch
	}

	indexed := make(map[uint64]Candle, len(x)+len(y))
	for _, each := range x {
		if _, ok := indexed[each.Time]; ok {
			return nil, ErrDuplicatedCandle
		}
		indexed[each.Time] = each
	}
	for _, each := range y {
		if present, ok := indexed[each.Time]; ok {
			if present != each {
				return nil, ErrMismatchedCandles
			}
			continue
		}
		indexed[each.Time] = each
	}

	merged := make([]Candle, 0, len(indexed))
	for _, each := range indexed {
		merged = append(merged, each)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Time < merged[j].Time
	})

	return merged, nil
}
