package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var errStubPool = errors.New("stub pool does not execute statements")

// stubPool is a connection pool that never reaches a server. BeginTx and
// Commit fail with the configured errors.
type stubPool struct {
	beginErr  error
	commitErr error
	tx        *stubTx
}

func (p *stubPool) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	return nil, errStubPool
}

func (p *stubPool) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, errStubPool
}

func (p *stubPool) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, errStubPool
}

func (p *stubPool) QueryRowContext(context.Context, string, ...any) *sql.Row {
	return nil
}

func (p *stubPool) BeginTx(context.Context, *sql.TxOptions) (gorm.ConnPool, error) {
	if p.beginErr != nil {
		return nil, p.beginErr
	}
	p.tx = &stubTx{stubPool: p}

	return p.tx, nil
}

type stubTx struct {
	*stubPool
	committed  bool
	rolledBack bool
}

func (tx *stubTx) Commit() error {
	if tx.commitErr != nil {
		return tx.commitErr
	}
	tx.committed = true

	return nil
}

func (tx *stubTx) Rollback() error {
	tx.rolledBack = true

	return nil
}

func newStubDB(t *testing.T, pool *stubPool) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: pool}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db
}
