package router

import (
	"context"
	"net/http"
	apphandler "todos-go-backend/pkg/adapter/handler"
	"todos-go-backend/pkg/entity/model"
	appmiddleware "todos-go-backend/pkg/infrastructure/router/middleware"
	"todos-go-backend/pkg/util/datetime"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// Path of route
const (
	QueryPath      = "/graphql"
	PlaygroundPath = "/playground"
	HealthPath     = "/health"
	MetricsPath    = "/metrics"
)

// Options of router
type Options struct {
	Logger         *zap.Logger
	AllowedOrigins []string
	// Metrics enables request metrics and the metrics route.
	Metrics *appmiddleware.Metrics
	// Ping checks the store on every health check when set.
	Ping func(ctx context.Context) error
}

// Health is the body of the health route.
type Health struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// New creates route endpoint
func New(srv *handler.Server, options Options) *echo.Echo {
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if options.Metrics != nil {
		e.Use(options.Metrics.Middleware())
	}
	e.Use(appmiddleware.Logger(options.Logger))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     options.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
	}))

	e.GET(HealthPath, func(c echo.Context) error {
		if options.Ping != nil {
			if err := options.Ping(c.Request().Context()); err != nil {
				return apphandler.HandleError(c, model.NewDBError(err))
			}
		}
		return c.JSON(http.StatusOK, Health{Status: "healthy", Timestamp: datetime.FormatDate(datetime.NowUTC())})
	})

	if options.Metrics != nil {
		e.GET(MetricsPath, echo.WrapHandler(options.Metrics.Handler()))
	}

	e.POST(QueryPath, echo.WrapHandler(srv))
	e.GET(QueryPath, echo.WrapHandler(srv))
	e.GET(PlaygroundPath, func(c echo.Context) error {
		playground.Handler("GraphQL", QueryPath).ServeHTTP(c.Response(), c.Request())
		return nil
	})

	return e
}
