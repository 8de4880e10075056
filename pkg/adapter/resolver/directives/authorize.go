package directives

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
)

// Directive wraps the resolution of a root field.
type Directive func(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error)

// AuthorizeDirective is the authorization hook of every root field. Every
// caller is currently permitted.
func AuthorizeDirective(
	ctx context.Context,
	obj interface{},
	next graphql.Resolver,
) (res interface{}, err error) {
	return next(ctx)
}

// Chain composes directives so that the first one runs outermost.
func Chain(ds ...Directive) Directive {
	return func(ctx context.Context, obj interface{}, next graphql.Resolver) (interface{}, error) {
		for i := len(ds) - 1; i >= 0; i-- {
			d, inner := ds[i], next
			next = func(ctx context.Context) (interface{}, error) {
				return d(ctx, obj, inner)
			}
		}
		return next(ctx)
	}
}
