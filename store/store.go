// Package store keeps named candle series in a local SQLite database.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ortfero/swollencandle/candle"
	"github.com/ortfero/swollencandle/internal/id"
)

// Dataset describes one stored candle series.
type Dataset struct {
	ID      string
	Name    string
	Period  uint32
	Candles int
	Created time.Time
}

// Store wraps the dataset database. Safe for use from one goroutine.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveCandles stores a series under a unique dataset name in one
// transaction. Empty series are rejected: a dataset always carries a
// period. Saving an existing name fails.
func (s *Store) SaveCandles(name string, candles []candle.Candle) (Dataset, error) {
	if len(candles) == 0 {
		return Dataset{}, fmt.Errorf("dataset %q: empty candle series", name)
	}

	ds := Dataset{
		ID:      id.New(),
		Name:    name,
		Period:  candles[0].Period,
		Candles: len(candles),
		Created: time.Now().UTC(),
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Dataset{}, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO datasets (dataset_id, name, period, candles, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		ds.ID, ds.Name, ds.Period, ds.Candles, ds.Created,
	)
	if err != nil {
		return Dataset{}, fmt.Errorf("dataset %q: %w", name, err)
	}

	insert, err := tx.Prepare(`
		INSERT INTO candles
		(dataset_id, time, period, trades, volume, vwap_price, open_price, high_price, low_price, close_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return Dataset{}, err
	}
	defer insert.Close()

	for _, c := range candles {
		_, err := insert.Exec(ds.ID, c.Time, c.Period, c.Count, c.Volume,
			c.VWAP, c.Open, c.High, c.Low, c.Close)
		if err != nil {
			return Dataset{}, fmt.Errorf("dataset %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Dataset{}, err
	}

	return ds, nil
}

// LoadCandles returns the named series ordered by time.
func (s *Store) LoadCandles(name string) ([]candle.Candle, error) {
	dsID, err := s.datasetID(name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT time, period, trades, volume, vwap_price, open_price, high_price, low_price, close_price
		FROM candles
		WHERE dataset_id = ?
		ORDER BY time ASC`, dsID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []candle.Candle
	for rows.Next() {
		var c candle.Candle
		if err := rows.Scan(&c.Time, &c.Period, &c.Count, &c.Volume,
			&c.VWAP, &c.Open, &c.High, &c.Low, &c.Close); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ListDatasets returns every dataset ordered by name.
func (s *Store) ListDatasets() ([]Dataset, error) {
	rows, err := s.db.Query(`
		SELECT dataset_id, name, period, candles, created_at
		FROM datasets
		ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Dataset
	for rows.Next() {
		var ds Dataset
		if err := rows.Scan(&ds.ID, &ds.Name, &ds.Period, &ds.Candles, &ds.Created); err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// DeleteDataset removes the named series and its candles.
func (s *Store) DeleteDataset(name string) error {
	dsID, err := s.datasetID(name)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM candles WHERE dataset_id = ?`, dsID); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM datasets WHERE dataset_id = ?`, dsID); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) datasetID(name string) (string, error) {
	var dsID string
	err := s.db.QueryRow(`SELECT dataset_id FROM datasets WHERE name = ?`, name).Scan(&dsID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", fmt.Errorf("dataset %q not found", name)
		}
		return "", err
	}
	return dsID, nil
}
