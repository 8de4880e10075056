package usecase

import (
	"context"
	"todos-go-backend/pkg/entity/model"
	"todos-go-backend/pkg/usecase/repository"

	"github.com/google/uuid"
)

type todoUseCase struct {
	todoRepository repository.Todo
}

// Todo is the service layer of todos.
//
// Get and Update return a nil todo with a nil error when the id has no record,
// Delete returns false in that case. Callers decide how to surface it.
type Todo interface {
	List(ctx context.Context) ([]*model.Todo, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) (*model.Todo, error)
	Update(ctx context.Context, id uuid.UUID, input model.UpdateTodoInput) (*model.Todo, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

func (t *todoUseCase) List(ctx context.Context) ([]*model.Todo, error) {
	return t.todoRepository.List(ctx)
}

func (t *todoUseCase) Get(ctx context.Context, id uuid.UUID) (*model.Todo, error) {
	return t.todoRepository.Get(ctx, id)
}

func (t *todoUseCase) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) (*model.Todo, error) {
	todo := &model.Todo{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
	}
	if input.IsCompleted != nil {
		todo.IsCompleted = *input.IsCompleted
	}
	return t.todoRepository.Create(ctx, todo)
}

func (t *todoUseCase) Update(
	ctx context.Context,
	id uuid.UUID,
	input model.UpdateTodoInput,
) (*model.Todo, error) {
	existing, err := t.todoRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Status = input.Status
	existing.IsCompleted = input.IsCompleted

	updated, err := t.todoRepository.Update(ctx, existing)
	if err == nil {
		return updated, nil
	}
	if !model.IsConflictError(err) {
		return nil, err
	}

	// The row changed under us; a concurrent delete demotes to not found.
	exists, xerr := t.todoRepository.Exists(ctx, id)
	if xerr != nil {
		return nil, xerr
	}
	if !exists {
		return nil, nil
	}
	return nil, err
}

func (t *todoUseCase) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return t.todoRepository.Delete(ctx, id)
}

func (t *todoUseCase) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return t.todoRepository.Exists(ctx, id)
}
