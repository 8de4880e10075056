package todorepository_test

import (
	"context"
	"testing"
	"todos-go-backend/pkg/adapter/repository/todorepository"
	"todos-go-backend/pkg/entity/model"
	"todos-go-backend/testutil"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (client *entsql.Driver, teardown func()) {
	testutil.ReadConfig()
	c := testutil.NewDBClient(t)

	return c, func() {
		testutil.DropTodo(t, c)
		defer c.Close()
	}
}

func newTodo(title string) *model.Todo {
	return &model.Todo{
		ID:          uuid.New(),
		Title:       title,
		Description: title + " description",
		Status:      model.TodoStatusPending,
	}
}

func TestTodoRepository_Get(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)

	tests := []struct {
		name     string
		arrange  func(t *testing.T) uuid.UUID
		assert   func(t *testing.T, id uuid.UUID, got *model.Todo, err error)
		teardown func(t *testing.T)
	}{
		{
			name: "It should get todo with the stored fields",
			arrange: func(t *testing.T) uuid.UUID {
				todo := newTodo("write tests")
				todo.IsCompleted = true
				todo.Status = "Blocked"
				_, err := repo.Create(context.Background(), todo)
				require.NoError(t, err)
				return todo.ID
			},
			assert: func(t *testing.T, id uuid.UUID, got *model.Todo, err error) {
				require.NoError(t, err)
				want := &model.Todo{
					ID:          id,
					Title:       "write tests",
					Description: "write tests description",
					Status:      "Blocked",
					IsCompleted: true,
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("Get() mismatch (-want +got):\n%s", diff)
				}
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should return nil for an unknown id",
			arrange: func(t *testing.T) uuid.UUID {
				return uuid.MustParse("00000000-0000-0000-0000-000000000000")
			},
			assert: func(t *testing.T, id uuid.UUID, got *model.Todo, err error) {
				assert.NoError(t, err)
				assert.Nil(t, got)
			},
			teardown: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.arrange(t)
			got, err := repo.Get(context.Background(), id)
			tt.assert(t, id, got, err)
			tt.teardown(t)
		})
	}
}

func TestTodoRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)
	ctx := context.Background()

	got, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	ids := []uuid.UUID{}
	for _, title := range []string{"a", "b", "c"} {
		todo, err := repo.Create(ctx, newTodo(title))
		require.NoError(t, err)
		ids = append(ids, todo.ID)
	}

	deleted, err := repo.Delete(ctx, ids[1])
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	titles := []string{}
	for _, todo := range got {
		titles = append(titles, todo.Title)
	}
	assert.ElementsMatch(t, []string{"a", "c"}, titles)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestTodoRepository_CreateBulk(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)
	ctx := context.Background()

	tests := []struct {
		name     string
		arrange  func(t *testing.T) []*model.Todo
		assert   func(t *testing.T, got []*model.Todo, err error)
		teardown func(t *testing.T)
	}{
		{
			name: "It should store every todo",
			arrange: func(t *testing.T) []*model.Todo {
				return []*model.Todo{newTodo("a"), newTodo("b")}
			},
			assert: func(t *testing.T, got []*model.Todo, err error) {
				require.NoError(t, err)
				require.Len(t, got, 2)

				stored, err := repo.List(ctx)
				require.NoError(t, err)
				if diff := cmp.Diff(got, stored, cmpopts.SortSlices(func(a, b *model.Todo) bool {
					return a.Title < b.Title
				})); diff != "" {
					t.Errorf("List() mismatch (-want +got):\n%s", diff)
				}
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should store nothing when one row fails",
			arrange: func(t *testing.T) []*model.Todo {
				existing, err := repo.Create(ctx, newTodo("existing"))
				require.NoError(t, err)

				duplicate := newTodo("duplicate")
				duplicate.ID = existing.ID
				return []*model.Todo{newTodo("first"), duplicate}
			},
			assert: func(t *testing.T, got []*model.Todo, err error) {
				require.Error(t, err)
				assert.True(t, model.IsDBError(err))
				assert.Nil(t, got)

				stored, err := repo.List(ctx)
				require.NoError(t, err)
				require.Len(t, stored, 1)
				assert.Equal(t, "existing", stored[0].Title)
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should accept an empty batch",
			arrange: func(t *testing.T) []*model.Todo {
				return []*model.Todo{}
			},
			assert: func(t *testing.T, got []*model.Todo, err error) {
				require.NoError(t, err)
				assert.Empty(t, got)

				n, err := repo.Count(ctx)
				require.NoError(t, err)
				assert.Zero(t, n)
			},
			teardown: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todos := tt.arrange(t)
			got, err := repo.CreateBulk(ctx, todos)
			tt.assert(t, got, err)
			tt.teardown(t)
		})
	}
}

func TestTodoRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)
	ctx := context.Background()

	tests := []struct {
		name    string
		arrange func(t *testing.T) *model.Todo
		assert  func(t *testing.T, todo *model.Todo, got *model.Todo, err error)
	}{
		{
			name: "It should replace all mutable fields",
			arrange: func(t *testing.T) *model.Todo {
				todo, err := repo.Create(ctx, newTodo("before"))
				require.NoError(t, err)
				return &model.Todo{
					ID:          todo.ID,
					Title:       "after",
					Description: "changed",
					Status:      model.TodoStatusCompleted,
					IsCompleted: true,
				}
			},
			assert: func(t *testing.T, todo *model.Todo, got *model.Todo, err error) {
				require.NoError(t, err)
				assert.Equal(t, todo, got)

				stored, err := repo.Get(ctx, todo.ID)
				require.NoError(t, err)
				assert.Equal(t, todo, stored)
			},
		},
		{
			name: "It should accept an update with identical values",
			arrange: func(t *testing.T) *model.Todo {
				todo, err := repo.Create(ctx, newTodo("same"))
				require.NoError(t, err)
				copied := *todo
				return &copied
			},
			assert: func(t *testing.T, todo *model.Todo, got *model.Todo, err error) {
				require.NoError(t, err)
				stored, err := repo.Get(ctx, todo.ID)
				require.NoError(t, err)
				assert.Equal(t, todo, stored)
			},
		},
		{
			name: "It should report a conflict when the row is missing",
			arrange: func(t *testing.T) *model.Todo {
				return newTodo("ghost")
			},
			assert: func(t *testing.T, todo *model.Todo, got *model.Todo, err error) {
				assert.True(t, model.IsConflictError(err))
				assert.Nil(t, got)

				exists, err := repo.Exists(ctx, todo.ID)
				require.NoError(t, err)
				assert.False(t, exists, "a failed update must not insert")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := tt.arrange(t)
			got, err := repo.Update(ctx, todo)
			tt.assert(t, todo, got, err)
			testutil.DropTodo(t, client)
		})
	}
}

func TestTodoRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}

	client, teardown := setup(t)
	defer teardown()

	repo := todorepository.NewTodoRepository(client)
	ctx := context.Background()

	todo, err := repo.Create(ctx, newTodo("to delete"))
	require.NoError(t, err)

	exists, err := repo.Exists(ctx, todo.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.Delete(ctx, todo.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, todo.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	exists, err = repo.Exists(ctx, todo.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
