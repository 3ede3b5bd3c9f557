package sqlutil

import (
	"context"
	"database/sql"
	"errors"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx; query packages are built on it.
type DBTX interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// ErrScopeClosed is returned when a finished scope is committed again.
var ErrScopeClosed = errors.New("transaction scope already closed")

type scopeKey struct{}

// Scope is a single transaction acquired at the start of a unit of work
// (one HTTP request) and committed or rolled back exactly once at its end.
type Scope struct {
	tx           *sql.Tx
	rollbackOnly bool
	closed       bool
	afterCommit  []func()
}

// Begin opens a new scope on db.
func Begin(ctx context.Context, db *sql.DB) (*Scope, error) {
	tx, err := db.BeginTx(ctx, nil) // BEGIN
	if err != nil {
		return nil, err
	}
	return &Scope{tx: tx}, nil
}

// Context returns a child of ctx carrying the scope.
func (s *Scope) Context(ctx context.Context) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// Tx exposes the underlying transaction.
func (s *Scope) Tx() *sql.Tx {
	return s.tx
}

// SetRollbackOnly makes a later Commit roll back instead.
func (s *Scope) SetRollbackOnly() {
	s.rollbackOnly = true
}

// RollbackOnly reports whether the scope has been marked rollback-only.
func (s *Scope) RollbackOnly() bool {
	return s.rollbackOnly
}

// AfterCommit registers fn to run once the scope commits successfully.
func (s *Scope) AfterCommit(fn func()) {
	s.afterCommit = append(s.afterCommit, fn)
}

// Commit commits the transaction, or rolls it back when marked rollback-only.
// Hooks registered with AfterCommit only run after a real commit.
func (s *Scope) Commit() error {
	if s.closed {
		return ErrScopeClosed
	}
	if s.rollbackOnly {
		return s.Rollback()
	}
	s.closed = true
	if err := s.tx.Commit(); err != nil { // COMMIT
		return err
	}
	for _, fn := range s.afterCommit {
		fn()
	}
	return nil
}

// Rollback aborts the transaction. It is a no-op once the scope is closed,
// so it can always be deferred.
func (s *Scope) Rollback() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.tx.Rollback() // ROLLBACK
}

// FromContext returns the scope carried by ctx, if any.
func FromContext(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(*Scope)
	return s, ok
}

// Conn returns the scope's transaction when ctx carries one, otherwise db.
func Conn(ctx context.Context, db *sql.DB) DBTX {
	if s, ok := FromContext(ctx); ok {
		return s.tx
	}
	return db
}

// MarkRollback marks the scope in ctx rollback-only. Without a scope it does nothing.
func MarkRollback(ctx context.Context) {
	if s, ok := FromContext(ctx); ok {
		s.SetRollbackOnly()
	}
}

// AfterCommit defers fn until the scope in ctx commits. Without a scope there is
// nothing to wait for and fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	if s, ok := FromContext(ctx); ok {
		s.AfterCommit(fn)
		return
	}
	fn()
}

// Run executes fn inside a *sql.Tx.
// When ctx already carries a scope, fn joins it and the scope owner decides the
// outcome. Otherwise a transaction is opened: if fn returns an error the tx
// rolls back, else it commits.
func Run[T any](
	ctx context.Context,
	db *sql.DB,
	newQueries func(DBTX) *T,
	fn func(q *T) error,
) error {
	if s, ok := FromContext(ctx); ok {
		return fn(newQueries(s.tx))
	}

	tx, err := db.BeginTx(ctx, nil) // BEGIN
	if err != nil {
		return err
	}
	q := newQueries(tx) // bind queries to this tx
	if err := fn(q); err != nil {
		_ = tx.Rollback() // ROLLBACK
		return err
	}
	return tx.Commit() // COMMIT
}
