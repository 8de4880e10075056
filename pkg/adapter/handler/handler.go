package handler

import (
	"context"
	"errors"
	"net/http"
	"todos-go-backend/pkg/entity/model"

	"github.com/99designs/gqlgen/graphql"
	"github.com/hashicorp/go-multierror"
	"github.com/labstack/echo/v4"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// HandleGraphQLError converts err into a client facing GraphQL error. Only the
// message and code of an application error reach the client; anything else is
// reported as an internal server error. Errors raised by the GraphQL layer
// itself, such as validation failures, pass through unchanged.
func HandleGraphQLError(ctx context.Context, err error) *gqlerror.Error {
	path := graphql.GetPath(ctx)

	var gqlErr *gqlerror.Error
	if errors.As(err, &gqlErr) {
		if gqlErr.Unwrap() == nil {
			return gqlErr
		}
		if gqlErr.Path != nil {
			path = gqlErr.Path
		}
	}

	var merr *multierror.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		err = merr.Errors[0]
	}

	var appErr *model.Error
	if !errors.As(err, &appErr) {
		appErr, _ = model.NewInternalServerError(err).(*model.Error)
	}

	return &gqlerror.Error{
		Path:       path,
		Message:    appErr.Message,
		Extensions: appErr.Extensions,
	}
}

// HandleError writes err as a JSON response on a plain HTTP route.
func HandleError(c echo.Context, err error) error {
	var appErr *model.Error
	if !errors.As(err, &appErr) {
		appErr, _ = model.NewInternalServerError(err).(*model.Error)
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case model.NotFoundError:
		status = http.StatusNotFound
	case model.ConflictError:
		status = http.StatusConflict
	case model.InvalidParamError:
		status = http.StatusBadRequest
	case model.DBError:
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]interface{}{
		"message":    appErr.Message,
		"extensions": appErr.Extensions,
	})
}
