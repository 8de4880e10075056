package registry

import (
	"context"
	"todos-go-backend/pkg/adapter/controller"
	todorepository "todos-go-backend/pkg/adapter/repository/todorepository"
	usecase "todos-go-backend/pkg/usecase/usecase/todo"
)

// Seeder fills an empty store with example data.
type Seeder interface {
	Seed(ctx context.Context) (int, error)
}

func (r *registry) NewTodoController() controller.Todo {
	repo := todorepository.NewTodoRepository(r.client)
	u := usecase.NewTodoUseCase(repo)

	return controller.NewTodoController(u)
}

func (r *registry) NewSeeder() Seeder {
	repo := todorepository.NewTodoRepository(r.client)
	return usecase.NewSeeder(repo, r.logger.Named("seed"))
}
