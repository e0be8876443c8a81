package candle

// FromTrades folds time-ordered trades into candles of the given
// period in seconds. The fold is a single left-to-right pass: a trade
// inside the current bucket extends the open candle, a trade at or past
// the bucket boundary flushes it and seeds the next one. VWAP is
// computed at flush time only. Empty input yields an empty series.
func FromTrades(trades []Trade, period uint32) []Candle {
	if len(trades) == 0 {
		return nil
	}

	span := uint64(period)
	first := trades[0]
	cur := Candle{
		Time:   first.Time / span * span,
		Period: period,
		Count:  1,
		Volume: first.Amount,
		Open:   first.Price,
		High:   first.Price,
		Low:    first.Price,
		Close:  first.Price,
	}
	turnover := first.Amount * first.Price

	var candles []Candle
	for _, each := range trades[1:] {
		if each.Time >= cur.Time+span {
			cur.VWAP = turnover / cur.Volume
			candles = append(candles, cur)
			cur = Candle{
				Time:   each.Time / span * span,
				Period: period,
				Count:  1,
				Volume: each.Amount,
				Open:   each.Price,
				High:   each.Price,
				Low:    each.Price,
				Close:  each.Price,
			}
			turnover = each.Amount * each.Price
			continue
		}
		cur.Count++
		cur.Volume += each.Amount
		turnover += each.Price * each.Amount
		// At most one bound moves per trade.
		if each.Price > cur.High {
			cur.High = each.Price
		} else if each.Price < cur.Low {
			cur.Low = each.Price
		}
		cur.Close = each.Price
	}
	cur.VWAP = turnover / cur.Volume

	return append(candles, cur)
}
