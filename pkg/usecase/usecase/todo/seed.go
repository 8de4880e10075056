package usecase

import (
	"context"
	"fmt"
	"todos-go-backend/pkg/entity/model"
	"todos-go-backend/pkg/usecase/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTodos are inserted into an empty store.
var DefaultTodos = []model.Todo{
	{
		Title:       "Welcome to Todos API",
		Description: "This is your first todo item created during database initialization.",
		Status:      model.TodoStatusPending,
		IsCompleted: false,
	},
	{
		Title:       "Explore GraphQL endpoints",
		Description: "Try out the GraphQL queries and mutations.",
		Status:      model.TodoStatusPending,
		IsCompleted: false,
	},
}

// Seeder pre-populates an empty store.
type Seeder struct {
	todoRepository repository.Todo
	logger         *zap.Logger
}

// NewSeeder creates a Seeder
func NewSeeder(r repository.Todo, logger *zap.Logger) *Seeder {
	return &Seeder{todoRepository: r, logger: logger}
}

// Seed inserts DefaultTodos when the store holds no todo and returns how many
// were inserted. The todos are written in one transaction, so a failed seed
// leaves the store empty and is retried on the next start.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	count, err := s.todoRepository.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	if count > 0 {
		s.logger.Info("database already contains data, skipping seed", zap.Int("todos", count))
		return 0, nil
	}

	s.logger.Info("seeding initial data")
	todos := make([]*model.Todo, 0, len(DefaultTodos))
	for _, d := range DefaultTodos {
		todo := d
		todo.ID = uuid.New()
		todos = append(todos, &todo)
	}
	seeded, err := s.todoRepository.CreateBulk(ctx, todos)
	if err != nil {
		return 0, fmt.Errorf("failed to seed todos: %w", err)
	}
	s.logger.Info("initial data seeded", zap.Int("todos", len(seeded)))

	return len(seeded), nil
}
