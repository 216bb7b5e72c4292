package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/failure"
	"github.com/rhonzzlll/AIMbookingapp-sub001/shared/logger"
)

// TxRunner runs a function inside a single database transaction on the write
// connection. Check-then-act sequences (conflict check followed by an insert or
// update) must go through this so concurrent requests cannot both pass the check
// and both commit.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error
}

// WithTx begins a transaction, invokes fn, and commits. Any error from fn rolls
// the transaction back fully, so a failed multi-row write leaves nothing behind.
func (c *Connection) WithTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := c.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		logger.ErrorWithStack(err)

		return failure.InternalError(fmt.Errorf("failed to begin transaction: %w", err)) //nolint:wrapcheck
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.ErrorWithStack(rbErr)
		}

		return err
	}

	if err := tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return failure.InternalError(fmt.Errorf("failed to commit transaction: %w", err)) //nolint:wrapcheck
	}

	return nil
}
