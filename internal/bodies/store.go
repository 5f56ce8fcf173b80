package bodies

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store provides durable storage for tabulated ephemeris samples.
// Uses SQLite with WAL mode for concurrent read access.
type Store struct {
	db *sql.DB
}

// OpenStore creates or opens a SQLite ephemeris database at the given path
// and applies the schema. Idempotent - safe to call multiple times.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragma %q: %w", p, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutRecords inserts or replaces tabulated samples for one body.
func (s *Store) PutRecords(body string, records []EphemerisRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO ephemeris (body, epoch, x, y, z, vx, vy, vz)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(body, r.Epoch,
			r.State[0], r.State[1], r.State[2],
			r.State[3], r.State[4], r.State[5]); err != nil {
			return fmt.Errorf("insert sample for %q at %g: %w", body, r.Epoch, err)
		}
	}
	return tx.Commit()
}

// LoadRegistry reads every stored body into a registry of tabulated
// ephemerides.
func (s *Store) LoadRegistry() (*Registry, error) {
	rows, err := s.db.Query(
		`SELECT body, epoch, x, y, z, vx, vy, vz FROM ephemeris ORDER BY body, epoch`)
	if err != nil {
		return nil, fmt.Errorf("query ephemeris: %w", err)
	}
	defer rows.Close()

	samples := map[string][]EphemerisRecord{}
	var order []string
	for rows.Next() {
		var body string
		var r EphemerisRecord
		if err := rows.Scan(&body, &r.Epoch,
			&r.State[0], &r.State[1], &r.State[2],
			&r.State[3], &r.State[4], &r.State[5]); err != nil {
			return nil, fmt.Errorf("scan ephemeris row: %w", err)
		}
		if _, seen := samples[body]; !seen {
			order = append(order, body)
		}
		samples[body] = append(samples[body], r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read ephemeris rows: %w", err)
	}

	list := make([]*Body, 0, len(order))
	for _, name := range order {
		eph, err := NewTabulatedEphemeris(samples[name])
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", name, err)
		}
		list = append(list, &Body{Name: name, Ephemeris: eph})
	}
	return NewRegistry(list...), nil
}
