//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"
	"todos-go-backend/pkg/entity/model"

	"github.com/google/uuid"
)

// Todo is an interface of repository.
//
// Get returns a nil todo and a nil error when no record matches. Update returns
// a conflict error when the row vanished between the caller's read and the write.
// CreateBulk stores either every todo or none of them.
type Todo interface {
	Get(ctx context.Context, id uuid.UUID) (*model.Todo, error)
	List(ctx context.Context) ([]*model.Todo, error)
	Create(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	CreateBulk(ctx context.Context, todos []*model.Todo) ([]*model.Todo, error)
	Update(ctx context.Context, todo *model.Todo) (*model.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteAll(ctx context.Context) (int, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
}
