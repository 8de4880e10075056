package todorepository

import (
	"context"
	"todos-go-backend/pkg/entity/model"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

func (r *todoRepository) Get(ctx context.Context, id uuid.UUID) (*model.Todo, error) {
	b := r.builder()
	t := b.Table(Table)
	query, args := b.Select(t.Columns(Columns...)...).
		From(t).
		Where(entsql.EQ(t.C(FieldID), id)).
		Limit(1).
		Query()

	todos, err := r.query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	if len(todos) == 0 {
		return nil, nil
	}
	return todos[0], nil
}

func (r *todoRepository) List(ctx context.Context) ([]*model.Todo, error) {
	b := r.builder()
	t := b.Table(Table)
	query, args := b.Select(t.Columns(Columns...)...).From(t).Query()

	return r.query(ctx, query, args)
}

func (r *todoRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.count(ctx, entsql.EQ(FieldID, id))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *todoRepository) Count(ctx context.Context) (int, error) {
	return r.count(ctx, nil)
}

func (r *todoRepository) count(ctx context.Context, where *entsql.Predicate) (int, error) {
	b := r.builder()
	selector := b.Select(entsql.Count("*")).From(b.Table(Table))
	if where != nil {
		selector = selector.Where(where)
	}
	query, args := selector.Query()

	rows := &entsql.Rows{}
	if err := r.client.Query(ctx, query, args, rows); err != nil {
		return 0, model.NewDBError(err)
	}
	defer rows.Close()

	var n int
	if rows.Next() {
		if err := rows.Scan(&n); err != nil {
			return 0, model.NewDBError(err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, model.NewDBError(err)
	}
	return n, nil
}

func (r *todoRepository) query(ctx context.Context, query string, args []any) ([]*model.Todo, error) {
	rows := &entsql.Rows{}
	if err := r.client.Query(ctx, query, args, rows); err != nil {
		return nil, model.NewDBError(err)
	}
	defer rows.Close()

	todos, err := scanTodos(rows)
	if err != nil {
		return nil, model.NewDBError(err)
	}
	return todos, nil
}
