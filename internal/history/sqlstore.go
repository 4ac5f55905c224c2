package history

import (
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"
)

/*
A SQLStore journals generate runs via sqlite
*/

var schema string = `
	CREATE TABLE IF NOT EXISTS run (
		id TEXT PRIMARY KEY,
		output TEXT,
		start_date TEXT,
		end_date TEXT,
		row_count INTEGER,
		format TEXT,
		created_at TEXT
	);
	`

const dayLayout = "2006-01-02"

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore() *SQLStore {
	return &SQLStore{}
}

// Open opens (creating if necessary) the journal database at filepath.
func (s *SQLStore) Open(filepath string) error {
	db, err := sql.Open("sqlite", filepath)
	if err != nil {
		return err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return err
	}
	s.db = db
	return nil
}

func (s *SQLStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *SQLStore) Record(run Run) error {
	if s.db == nil {
		return errors.New("history store is not open")
	}

	_, err := s.db.Exec(
		`INSERT INTO run (id, output, start_date, end_date, row_count, format, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Output,
		run.Start.UTC().Format(dayLayout),
		run.End.UTC().Format(dayLayout),
		run.RowCount,
		run.Format,
		run.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

func (s *SQLStore) List(limit int) ([]Run, error) {
	if s.db == nil {
		return nil, errors.New("history store is not open")
	}

	query := `SELECT id, output, start_date, end_date, row_count, format, created_at
		FROM run ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var start, end, created string
		if err := rows.Scan(&r.ID, &r.Output, &start, &end, &r.RowCount, &r.Format, &created); err != nil {
			return nil, err
		}
		if r.Start, err = time.Parse(dayLayout, start); err != nil {
			return nil, err
		}
		if r.End, err = time.Parse(dayLayout, end); err != nil {
			return nil, err
		}
		if r.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *SQLStore) Clear() error {
	if s.db == nil {
		return errors.New("history store is not open")
	}
	_, err := s.db.Exec("DELETE FROM run")
	return err
}
