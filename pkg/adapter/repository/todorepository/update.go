package todorepository

import (
	"context"
	"database/sql"
	"todos-go-backend/pkg/adapter/repository/repositoryutil"
	"todos-go-backend/pkg/entity/model"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

func (r *todoRepository) Update(
	ctx context.Context,
	todo *model.Todo,
) (*model.Todo, error) {
	query, args := r.builder().Update(Table).
		Set(FieldTitle, todo.Title).
		Set(FieldDescription, todo.Description).
		Set(FieldStatus, todo.Status).
		Set(FieldIsCompleted, todo.IsCompleted).
		Where(entsql.EQ(FieldID, todo.ID)).
		Query()

	err := repositoryutil.WithTransactionalMutation(ctx, r.client, func(tx dialect.Tx) error {
		var res sql.Result
		if err := tx.Exec(ctx, query, args, &res); err != nil {
			return model.NewDBError(err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return model.NewDBError(err)
		}
		if affected != 1 {
			return model.NewConflictError(nil, todo.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return todo, nil
}
