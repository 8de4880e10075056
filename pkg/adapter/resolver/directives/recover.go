package directives

import (
	"context"
	"fmt"
	"todos-go-backend/pkg/adapter/handler"
	"todos-go-backend/pkg/entity/model"

	"github.com/99designs/gqlgen/graphql"
	"go.uber.org/zap"
)

// RecoverDirective returns a field middleware that turns a panicking resolver
// into an internal server error for that field.
func RecoverDirective(logger *zap.Logger) Directive {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(ctx context.Context, obj interface{}, next graphql.Resolver) (res interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("resolver panic", zap.Any("panic", r), zap.Stack("stack"))
				res = nil
				err = handler.HandleGraphQLError(
					ctx,
					model.NewInternalServerError(fmt.Errorf("panic: %v", r)),
				)
			}
		}()

		// Call the next resolver
		return next(ctx)
	}
}
