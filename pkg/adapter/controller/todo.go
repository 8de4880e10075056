package controller

import (
	"context"
	"todos-go-backend/pkg/entity/model"
	usecase "todos-go-backend/pkg/usecase/usecase/todo"

	"github.com/google/uuid"
)

type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, id uuid.UUID, input model.UpdateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type todoController struct {
	todoUseCase usecase.Todo
}

// Create new todo controller
func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) List(ctx context.Context) ([]*model.Todo, error) {
	return tc.todoUseCase.List(ctx)
}

func (tc *todoController) Get(ctx context.Context, id uuid.UUID) (*model.Todo, error) {
	return tc.todoUseCase.Get(ctx, id)
}

func (tc *todoController) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Create(ctx, input)
}

func (tc *todoController) Update(
	ctx context.Context,
	id uuid.UUID,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	return tc.todoUseCase.Update(ctx, id, input)
}

func (tc *todoController) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return tc.todoUseCase.Delete(ctx, id)
}
