package datastore_test

import (
	"context"
	"database/sql"
	"testing"
	"todos-go-backend/pkg/infrastructure/datastore"
	"todos-go-backend/testutil"

	"entgo.io/ent/schema/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTables(t *testing.T) {
	tables, err := datastore.Tables()
	require.NoError(t, err)
	require.Len(t, tables, 1)

	todos := tables[0]
	assert.Equal(t, "todos", todos.Name)
	require.Len(t, todos.PrimaryKey, 1)
	assert.Equal(t, "id", todos.PrimaryKey[0].Name)

	types := map[string]field.Type{}
	for _, c := range todos.Columns {
		types[c.Name] = c.Type
	}
	assert.Equal(t, map[string]field.Type{
		"id":           field.TypeUUID,
		"title":        field.TypeString,
		"description":  field.TypeString,
		"status":       field.TypeString,
		"is_completed": field.TypeBool,
	}, types)

	for _, c := range todos.Columns {
		if c.Name == "is_completed" {
			assert.Equal(t, false, c.Default)
		}
		if c.Name == "id" {
			assert.Nil(t, c.Default, "generated ids are not a store default")
		}
	}
}

func TestMigrate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}

	testutil.ReadConfig()
	client := testutil.NewDBClient(t)
	defer client.Close()

	// Applying the schema to an up to date store is a no-op.
	require.NoError(t, datastore.Migrate(context.Background(), client))

	ctx := context.Background()
	// is_completed falls back to its store default.
	var res sql.Result
	require.NoError(t, client.Exec(ctx,
		"INSERT INTO todos (id, title, description, status) VALUES (?, ?, ?, ?)",
		[]any{"6f1f3c1e-9c7a-4a51-8d52-0d1bbd1a5c11", "t", "d", "Pending"},
		&res,
	))
	n, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
