package store

// Schema mirrors the candle file columns so a dataset row scans
// positionally into a candle.
const Schema = `
CREATE TABLE IF NOT EXISTS datasets (
	dataset_id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	period INTEGER NOT NULL,
	candles INTEGER NOT NULL,
	created_at DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS candles (
	dataset_id TEXT NOT NULL,
	time INTEGER NOT NULL,
	period INTEGER NOT NULL,
	trades INTEGER NOT NULL,
	volume REAL NOT NULL,
	vwap_price REAL NOT NULL,
	open_price REAL NOT NULL,
	high_price REAL NOT NULL,
	low_price REAL NOT NULL,
	close_price REAL NOT NULL,
	PRIMARY KEY (dataset_id, time)
);
`
