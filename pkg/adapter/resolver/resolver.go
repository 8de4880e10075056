package resolver

import (
	"todos-go-backend/graph"
	"todos-go-backend/pkg/adapter/controller"
	"todos-go-backend/pkg/adapter/resolver/directives"
	"todos-go-backend/pkg/entity/model"
	"todos-go-backend/pkg/infrastructure/graphql"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// It serves as dependency injection for your app, add any dependencies you require here.

type Resolver struct {
	controller controller.Controller
}

// NewSchema registers every resolver of the API schema.
func NewSchema(controller controller.Controller, logger *zap.Logger) graphql.Config {
	r := &Resolver{controller: controller}

	return graphql.Config{
		Schema: graph.Schema(),
		Query: map[string]graphql.Resolver{
			"todos": r.Todos,
			"todo":  r.Todo,
		},
		Mutation: map[string]graphql.Resolver{
			"createTodo": r.CreateTodo,
			"updateTodo": r.UpdateTodo,
			"deleteTodo": r.DeleteTodo,
		},
		Objects: map[string]map[string]graphql.FieldResolver{
			"Todo": todoFields(),
		},
		Scalars: map[string]graphql.ScalarMarshaler{
			"UUID": marshalUUID,
		},
		Middleware: graphql.FieldMiddleware(directives.Chain(
			directives.RecoverDirective(logger),
			directives.AuthorizeDirective,
		)),
	}
}

func marshalUUID(v interface{}) (gqlgen.Marshaler, error) {
	switch id := v.(type) {
	case uuid.UUID:
		return model.MarshalUUID(id), nil
	case *uuid.UUID:
		return model.MarshalUUID(*id), nil
	}
	return nil, model.NewInternalServerError(errInvalidUUIDValue(v))
}
