package graphql

import (
	"context"
	"fmt"
	apphandler "todos-go-backend/pkg/adapter/handler"
	"todos-go-backend/pkg/entity/model"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/99designs/gqlgen/graphql/handler/lru"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/ast"
	"go.uber.org/zap"
)

// NewServer creates a GraphQL server from a static resolver registration.
// POST carries a JSON body, GET carries the query string and only runs queries.
func NewServer(cfg Config, logger *zap.Logger) (*handler.Server, error) {
	es, err := NewExecutor(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("graphql")

	srv := handler.New(es)
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetQueryCache(lru.New[*ast.QueryDocument](1000))

	srv.Use(extension.Introspection{})
	srv.Use(extension.AutomaticPersistedQuery{
		Cache: lru.New[string](100),
	})

	srv.SetErrorPresenter(apphandler.HandleGraphQLError)
	srv.SetRecoverFunc(func(_ context.Context, err any) error {
		logger.Error("panic while executing operation", zap.Any("panic", err))
		return model.NewInternalServerError(fmt.Errorf("panic: %v", err))
	})

	srv.AroundResponses(func(ctx context.Context, next gqlgen.ResponseHandler) *gqlgen.Response {
		resp := next(ctx)
		if resp == nil || !gqlgen.HasOperationContext(ctx) {
			return resp
		}
		opCtx := gqlgen.GetOperationContext(ctx)
		logger.Debug("operation executed",
			zap.String("operation", opCtx.OperationName),
			zap.Duration("latency", gqlgen.Now().Sub(opCtx.Stats.OperationStart)),
			zap.Int("errors", len(resp.Errors)),
		)
		for _, e := range resp.Errors {
			logger.Info("operation error", zap.String("operation", opCtx.OperationName), zap.Error(e))
		}
		return resp
	})

	return srv, nil
}
