package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DefaultSQLiteDSN keeps the whole database inside the process.
const DefaultSQLiteDSN = ":memory:"

type DB struct {
	*sqlx.DB
}

// OpenSQLite opens the SQLite backend and recreates its schema. Tables are
// dropped first, so every start begins from the seed data whatever the DSN.
func OpenSQLite(dsn string) (*DB, error) {
	if dsn == "" {
		dsn = DefaultSQLiteDSN
	}
	xdb, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: an in-memory database is private to its connection,
	// and it serializes id assignment.
	xdb.SetMaxOpenConns(1)
	xdb.SetMaxIdleConns(1)
	xdb.SetConnMaxLifetime(0)
	xdb.SetConnMaxIdleTime(0)
	if err := xdb.Ping(); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	d := &DB{DB: xdb}
	if err := d.ensureSchema(context.Background()); err != nil {
		_ = xdb.Close()
		return nil, err
	}
	return d, nil
}

func (d *DB) Close() error { return d.DB.Close() }

// Seed inserts the initial records in order.
func (d *DB) Seed(ctx context.Context, rs []Reservation, cs []Customer) error {
	tx, err := d.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for _, r := range rs {
		if _, err := tx.NamedExecContext(ctx, insertReservation, r); err != nil {
			return err
		}
	}
	for _, c := range cs {
		if _, err := tx.NamedExecContext(ctx, insertCustomer, c); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (d *DB) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`DROP TABLE IF EXISTS reservations`,
		`DROP TABLE IF EXISTS customers`,

		`CREATE TABLE reservations (
			id INTEGER PRIMARY KEY,
			customer TEXT NOT NULL,
			activity TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			guide TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE customers (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			phone TEXT NOT NULL,
			address TEXT NOT NULL DEFAULT '',
			total_bookings INTEGER NOT NULL DEFAULT 0,
			last_visit TEXT NOT NULL
		)`,
	}

	for _, s := range stmts {
		if _, err := d.DB.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
