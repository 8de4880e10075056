package repositoryutil

import (
	"context"
	"todos-go-backend/pkg/entity/model"

	"entgo.io/ent/dialect"
	"github.com/hashicorp/go-multierror"
)

// WithTransactionalMutation runs fn in a transaction opened on drv. The
// transaction is committed when fn succeeds and rolled back on error or panic.
func WithTransactionalMutation(
	ctx context.Context,
	drv dialect.Driver,
	fn func(tx dialect.Tx) error,
) error {
	tx, err := drv.Tx(ctx)
	if err != nil {
		return model.NewDBError(err)
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return multierror.Append(err, model.NewDBError(rerr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return model.NewDBError(err)
	}
	return nil
}
