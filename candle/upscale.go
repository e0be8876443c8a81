package candle

// constantPeriod reports whether every candle carries the period of the
// first one. Empty series pass.
func constantPeriod(candles []Candle) bool {
	if len(candles) == 0 {
		return true
	}
	period := candles[0].Period
	for _, each := range candles[1:] {
		if each.Period != period {
			return false
		}
	}
	return true
}

// Upscale re-aggregates a constant-period series into the coarser named
// unit without going back to raw trades. The unit length must be an
// exact multiple of the source period. The source is grouped into fixed
// runs of unit/period consecutive candles; a tail shorter than one full
// run is dropped. VWAP rolls up volume-weighted.
func Upscale(source []Candle, unit Period) ([]Candle, error) {
	if len(source) == 0 {
		return nil, nil
	}
	if !constantPeriod(source) {
		return nil, ErrNonConstantPeriod
	}

	period := source[0].Period
	target := unit.Seconds()
	if target%period != 0 {
		return nil, ErrInvalidUpscalePeriod
	}
	if target == period {
		result := make([]Candle, len(source))
		copy(result, source)
		return result, nil
	}

	fit := int(target / period)
	span := uint64(target)
	result := make([]Candle, len(source)/fit)
	for i := range result {
		run := source[i*fit : i*fit+fit]
		first := run[0]
		up := Candle{
			Time:   first.Time / span * span,
			Period: target,
			Count:  first.Count,
			Volume: first.Volume,
			Open:   first.Open,
			High:   first.High,
			Low:    first.Low,
			Close:  run[len(run)-1].Close,
		}
		turnover := first.VWAP * first.Volume
		for _, each := range run[1:] {
			up.Count += each.Count
			up.Volume += each.Volume
			turnover += each.Volume * each.VWAP
			if each.High > up.High {
				up.High = each.High
			}
			if each.Low < up.Low {
				up.Low = each.Low
			}
		}
		up.VWAP = turnover / up.Volume
		result[i] = up
	}

	return result, nil
}
