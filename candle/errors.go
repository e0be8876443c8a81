package candle

import "errors"

var (
	ErrNonConstantPeriod      = errors.New("non constant period")
	ErrInvalidUpscalePeriod   = errors.New("invalid upscale period")
	ErrMergingPeriodsMismatch = errors.New("merging periods mismatch")
	ErrDuplicatedCandle       = errors.New("duplicated candle")
	ErrMismatchedCandles      = errors.New("mismatched candles")
	ErrInvalidCandleFields    = errors.New("invalid candle fields")
	ErrInvalidTradeFields     = errors.New("invalid trade fields")
)
