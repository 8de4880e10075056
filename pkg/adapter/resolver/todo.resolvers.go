package resolver

import (
	"context"
	"todos-go-backend/pkg/entity/model"
	"todos-go-backend/pkg/infrastructure/graphql"
)

// Todos is the resolver for the todos field.
func (r *Resolver) Todos(ctx context.Context, _ map[string]interface{}) (interface{}, error) {
	return r.controller.Todo.List(ctx)
}

// Todo is the resolver for the todo field.
func (r *Resolver) Todo(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	id, err := model.UnmarshalUUID(args["id"])
	if err != nil {
		return nil, err
	}

	t, err := r.controller.Todo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, model.NewNotFoundError(nil, id)
	}
	return t, nil
}

// CreateTodo is the resolver for the createTodo field.
func (r *Resolver) CreateTodo(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	input, err := unmarshalCreateTodoInput(args["input"])
	if err != nil {
		return nil, err
	}
	return r.controller.Todo.Create(ctx, input)
}

// UpdateTodo is the resolver for the updateTodo field.
func (r *Resolver) UpdateTodo(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	id, err := model.UnmarshalUUID(args["id"])
	if err != nil {
		return nil, err
	}
	input, err := unmarshalUpdateTodoInput(args["input"])
	if err != nil {
		return nil, err
	}

	t, err := r.controller.Todo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, model.NewNotFoundError(nil, id)
	}
	return t, nil
}

// DeleteTodo is the resolver for the deleteTodo field.
func (r *Resolver) DeleteTodo(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	id, err := model.UnmarshalUUID(args["id"])
	if err != nil {
		return nil, err
	}

	deleted, err := r.controller.Todo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, model.NewNotFoundError(nil, id)
	}
	return true, nil
}

func todoFields() map[string]graphql.FieldResolver {
	field := func(get func(t *model.Todo) interface{}) graphql.FieldResolver {
		return func(_ context.Context, obj interface{}) (interface{}, error) {
			return get(obj.(*model.Todo)), nil
		}
	}

	return map[string]graphql.FieldResolver{
		"id":          field(func(t *model.Todo) interface{} { return t.ID }),
		"title":       field(func(t *model.Todo) interface{} { return t.Title }),
		"description": field(func(t *model.Todo) interface{} { return t.Description }),
		"isCompleted": field(func(t *model.Todo) interface{} { return t.IsCompleted }),
		"status":      field(func(t *model.Todo) interface{} { return t.Status }),
	}
}
