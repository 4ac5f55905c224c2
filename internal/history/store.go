package history

import "time"

// Run records a single document generation.
type Run struct {
	ID        string
	Output    string
	Start     time.Time
	End       time.Time
	RowCount  int
	Format    string
	CreatedAt time.Time
}

// Store is a journal of document generation runs.
//
// After creation, a Store must be opened via Open before any other methods
// are invoked, and closed with Close when done.
type Store interface {
	Open(filepath string) error

	Close() error

	Record(run Run) error

	// List returns runs newest-first. A limit of 0 returns all runs.
	List(limit int) ([]Run, error)

	Clear() error
}
