package registry

import (
	"todos-go-backend/pkg/adapter/controller"

	"entgo.io/ent/dialect"
	"go.uber.org/zap"
)

type registry struct {
	client dialect.Driver
	logger *zap.Logger
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
	NewSeeder() Seeder
}

// New registers entire controller with dependencies
func New(client dialect.Driver, logger *zap.Logger) Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &registry{client: client, logger: logger}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Todo: r.NewTodoController(),
	}
}
