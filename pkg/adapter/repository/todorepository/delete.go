package todorepository

import (
	"context"
	"database/sql"
	"todos-go-backend/pkg/adapter/repository/repositoryutil"
	"todos-go-backend/pkg/entity/model"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

func (r *todoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args := r.builder().Delete(Table).
		Where(entsql.EQ(FieldID, id)).
		Query()

	var affected int64
	err := repositoryutil.WithTransactionalMutation(ctx, r.client, func(tx dialect.Tx) error {
		var res sql.Result
		if err := tx.Exec(ctx, query, args, &res); err != nil {
			return model.NewDBError(err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return model.NewDBError(err)
		}
		affected = n
		return nil
	})
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *todoRepository) DeleteAll(ctx context.Context) (int, error) {
	query, args := r.builder().Delete(Table).Query()

	var res sql.Result
	if err := r.client.Exec(ctx, query, args, &res); err != nil {
		return 0, model.NewDBError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, model.NewDBError(err)
	}
	return int(n), nil
}
