package todorepository

import (
	"context"
	"database/sql"
	"todos-go-backend/pkg/adapter/repository/repositoryutil"
	"todos-go-backend/pkg/entity/model"

	"entgo.io/ent/dialect"
)

func (r *todoRepository) Create(
	ctx context.Context,
	todo *model.Todo,
) (*model.Todo, error) {
	query, args := r.builder().Insert(Table).
		Columns(Columns...).
		Values(todo.ID, todo.Title, todo.Description, todo.Status, todo.IsCompleted).
		Query()

	var res sql.Result
	if err := r.client.Exec(ctx, query, args, &res); err != nil {
		return nil, model.NewDBError(err)
	}
	return todo, nil
}

func (r *todoRepository) CreateBulk(
	ctx context.Context,
	todos []*model.Todo,
) ([]*model.Todo, error) {
	if len(todos) == 0 {
		return todos, nil
	}

	insert := r.builder().Insert(Table).Columns(Columns...)
	for _, todo := range todos {
		insert.Values(todo.ID, todo.Title, todo.Description, todo.Status, todo.IsCompleted)
	}
	query, args := insert.Query()

	err := repositoryutil.WithTransactionalMutation(ctx, r.client, func(tx dialect.Tx) error {
		var res sql.Result
		if err := tx.Exec(ctx, query, args, &res); err != nil {
			return model.NewDBError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return todos, nil
}
