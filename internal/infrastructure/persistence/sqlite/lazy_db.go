package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/shade/internal/logging"
)

// ErrClosed is returned by LazyDB.DB after Close.
var ErrClosed = errors.New("preference database closed")

// LazyDB defers opening the database until a preference is read or written,
// so commands that never touch storage skip loading the SQLite module.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	err    error
	closed bool
}

// NewLazyDB returns a handle for the database at path without opening it.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB opens the database on the first call. An open failure sticks.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch {
	case l.closed:
		return nil, ErrClosed
	case l.db != nil:
		return l.db, nil
	case l.err != nil:
		return nil, l.err
	}

	db, err := NewConnection(ctx, l.path)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("path", l.path).Msg("preference database unavailable")
		l.err = fmt.Errorf("open preference database: %w", err)
		return nil, l.err
	}
	l.db = db
	return db, nil
}

// Close closes the connection if one was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	db := l.db
	l.db = nil
	return db.Close()
}

// IsInitialized reports whether a connection is currently open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file path.
func (l *LazyDB) Path() string {
	return l.path
}
