// Package candle computes fixed-interval OHLCV candles from raw trade
// ticks, upscales candle series to coarser periods, merges series with
// conflict detection and persists both trades and candles in a compact
// delimited-text row format.
package candle

// Candle aggregates the trades of one time bucket. Time is the left
// edge of the bucket in raw seconds and is always a multiple of Period.
// VWAP equals total turnover divided by total volume over the folded
// trades.
type Candle struct {
	Time   uint64
	Period uint32
	Count  uint64
	Volume float64
	VWAP   float64
	Open   float64
	High   float64
	Low    float64
	Close  float64
}

// Trade is a single execution at Time raw seconds.
type Trade struct {
	Time   uint64
	Amount float64
	Price  float64
}
