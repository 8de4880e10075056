package testutil

import (
	"context"
	"testing"
	"todos-go-backend/config"
	"todos-go-backend/pkg/adapter/repository/todorepository"
	"todos-go-backend/pkg/infrastructure/datastore"

	entsql "entgo.io/ent/dialect/sql"
)

// NewDBClient opens the configured test store and migrates it.
func NewDBClient(t *testing.T) *entsql.Driver {
	t.Helper()
	client, err := datastore.NewClient()
	if err != nil {
		t.Fatalf("failed opening %s store: %v", config.C.Database.Driver, err)
	}
	if err := datastore.Migrate(context.Background(), client); err != nil {
		client.Close()
		t.Fatalf("failed migrating store: %v", err)
	}
	return client
}

// DropAll drops all the data from database
func DropAll(t *testing.T, client *entsql.Driver) {
	t.Log("drop data from database")
	DropTodo(t, client)
}

// DropTodo drops all the data from todos.
func DropTodo(t *testing.T, client *entsql.Driver) {
	ctx := context.Background()
	_, err := todorepository.NewTodoRepository(client).DeleteAll(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}
