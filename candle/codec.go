package candle

import (
	"fmt"

	"github.com/ortfero/swollencandle/rowio"
)

// ReadCandles decodes a candle series from its row form. The first row
// is the header and is skipped wholesale. Any malformed row fails the
// whole read; no partial series is returned.
func ReadCandles(text []byte) ([]Candle, error) {
	return decodeCandles(rowio.NewReaderBytes(text))
}

// ReadCandlesFile reads path once and decodes it like ReadCandles.
// Open and read failures pass through unchanged.
func ReadCandlesFile(path string) ([]Candle, error) {
	r, err := rowio.NewReaderFile(path)
	if err != nil {
		return nil, err
	}
	return decodeCandles(r)
}

func decodeCandles(r *rowio.Reader) ([]Candle, error) {
	const rowEstimate = 72
	candles := make([]Candle, 0, r.Len()/rowEstimate+1)
	var c Candle
	rows := r.RowsAfterHeader()
	for rows.Next() {
		err := rows.Scan(&c.Time, &c.Period, &c.Count, &c.Volume,
			&c.VWAP, &c.Open, &c.High, &c.Low, &c.Close)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCandleFields, err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}

// WriteCandles encodes a candle series, header row first.
func WriteCandles(candles []Candle) []byte {
	return encodeCandles(candles).Bytes()
}

// WriteCandlesFile encodes like WriteCandles and writes the buffer to
// path in one call.
func WriteCandlesFile(path string, candles []Candle) error {
	return encodeCandles(candles).WriteFile(path)
}

func encodeCandles(candles []Candle) *rowio.Writer {
	const rowEstimate = 72
	var w rowio.Writer
	w.Reserve(len(candles) * rowEstimate)
	w.Format("time", "period", "trades", "volume", "vwap_price",
		"open_price", "high_price", "low_price", "close_price")
	for _, c := range candles {
		w.Format(c.Time, c.Period, c.Count, c.Volume,
			c.VWAP, c.Open, c.High, c.Low, c.Close)
	}
	return &w
}

// ReadTrades decodes a trade series from its row form. There is no
// header row. The on-disk column order is time, price, amount.
func ReadTrades(text []byte) ([]Trade, error) {
	return decodeTrades(rowio.NewReaderBytes(text))
}

// ReadTradesFile reads path once and decodes it like ReadTrades.
func ReadTradesFile(path string) ([]Trade, error) {
	r, err := rowio.NewReaderFile(path)
	if err != nil {
		return nil, err
	}
	return decodeTrades(r)
}

func decodeTrades(r *rowio.Reader) ([]Trade, error) {
	const rowEstimate = 32
	trades := make([]Trade, 0, r.Len()/rowEstimate+1)
	var t Trade
	rows := r.Rows()
	for rows.Next() {
		if err := rows.Scan(&t.Time, &t.Price, &t.Amount); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTradeFields, err)
		}
		trades = append(trades, t)
	}
	return trades, nil
}

// WriteTrades encodes a trade series, no header.
func WriteTrades(trades []Trade) []byte {
	return encodeTrades(trades).Bytes()
}

// WriteTradesFile encodes like WriteTrades and writes the buffer to
// path in one call.
func WriteTradesFile(path string, trades []Trade) error {
	return encodeTrades(trades).WriteFile(path)
}

func encodeTrades(trades []Trade) *rowio.Writer {
	const rowEstimate = 72
	var w rowio.Writer
	w.Reserve(len(trades) * rowEstimate)
	for _, t := range trades {
		w.Format(t.Time, t.Price, t.Amount)
	}
	return &w
}
