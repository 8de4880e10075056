package todorepository

import (
	"todos-go-backend/pkg/entity/model"
	ur "todos-go-backend/pkg/usecase/repository"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const (
	// Table holds the table name of the todo in the database.
	Table = "todos"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIsCompleted holds the string denoting the is_completed field in the database.
	FieldIsCompleted = "is_completed"
)

// Columns holds all SQL columns for todo fields, in scan order.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldDescription,
	FieldStatus,
	FieldIsCompleted,
}

type todoRepository struct {
	client dialect.Driver
}

func NewTodoRepository(client dialect.Driver) ur.Todo {
	return &todoRepository{client}
}

func (r *todoRepository) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.client.Dialect())
}

func scanTodos(rows *entsql.Rows) ([]*model.Todo, error) {
	todos := []*model.Todo{}
	for rows.Next() {
		t := &model.Todo{}
		if err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Status, &t.IsCompleted); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}
