package query_test

import (
	"fmt"
	"net/http"
	"testing"
	"todos-go-backend/pkg/infrastructure/router"
	"todos-go-backend/testutil"
	"todos-go-backend/testutil/e2e"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/gavv/httpexpect/v2"
)

func createTodo(expect *httpexpect.Expect, title string) string {
	resp := expect.POST(router.QueryPath).WithJSON(map[string]interface{}{
		"query": `
			mutation ($input: CreateTodoInput!) {
				createTodo(input: $input) { id }
			}
		`,
		"variables": map[string]interface{}{
			"input": map[string]interface{}{
				"title":       title,
				"description": title + " description",
				"status":      "Pending",
			},
		},
	}).Expect().Status(http.StatusOK)

	return e2e.GetObject(e2e.GetData(resp).Object(), "createTodo").Value("id").String().Raw()
}

func deleteTodo(expect *httpexpect.Expect, id string) {
	expect.POST(router.QueryPath).WithJSON(map[string]string{
		"query": fmt.Sprintf(`mutation { deleteTodo(id: "%s") }`, id),
	}).Expect().Status(http.StatusOK)
}

func TestTodo_GetTodo(t *testing.T) {
	expect, client, teardown := e2e.Setup(t, e2e.SetupOption{
		TearDown: func(t *testing.T, client *entsql.Driver) {
			testutil.DropTodo(t, client)
		},
	})
	defer teardown()

	tests := []struct {
		name     string
		arrange  func(t *testing.T) string
		act      func(t *testing.T, id string) *httpexpect.Response
		assert   func(t *testing.T, got *httpexpect.Response, id string)
		teardown func(t *testing.T)
	}{
		{
			name: "It should get a single todo by ID",
			arrange: func(t *testing.T) string {
				return createTodo(expect, "Buy milk")
			},
			act: func(t *testing.T, id string) *httpexpect.Response {
				return expect.POST(router.QueryPath).WithJSON(map[string]string{
					"query": fmt.Sprintf(`
						query {
							todo(id: "%s") { id title description status isCompleted }
						}
					`, id),
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response, id string) {
				got.Status(http.StatusOK)
				todo := e2e.GetObject(e2e.GetData(got).Object(), "todo")
				todo.Value("id").String().IsEqual(id)
				todo.Value("title").String().IsEqual("Buy milk")
				todo.Value("description").String().IsEqual("Buy milk description")
				todo.Value("status").String().IsEqual("Pending")
				todo.Value("isCompleted").Boolean().IsFalse()
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should get a todo over GET",
			arrange: func(t *testing.T) string {
				return createTodo(expect, "Read")
			},
			act: func(t *testing.T, id string) *httpexpect.Response {
				return expect.GET(router.QueryPath).
					WithQuery("query", fmt.Sprintf(`{ todo(id: "%s") { id title } }`, id)).
					Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response, id string) {
				got.Status(http.StatusOK)
				todo := e2e.GetObject(e2e.GetData(got).Object(), "todo")
				todo.Value("id").String().IsEqual(id)
				todo.Value("title").String().IsEqual("Read")
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
		{
			name: "It should report a missing todo by its ID",
			arrange: func(t *testing.T) string {
				return "00000000-0000-0000-0000-000000000000"
			},
			act: func(t *testing.T, id string) *httpexpect.Response {
				return expect.POST(router.QueryPath).WithJSON(map[string]string{
					"query": fmt.Sprintf(`query { todo(id: "%s") { id } }`, id),
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response, id string) {
				got.Status(http.StatusOK)
				e2e.GetData(got).IsNull()
				errors := e2e.GetErrors(got).Array()
				errors.Length().IsEqual(1)
				err := errors.Value(0).Object()
				err.Value("message").String().Contains(id)
				err.Value("extensions").Object().Value("code").String().IsEqual("NOT_FOUND")
				err.Value("path").Array().IsEqual([]string{"todo"})
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should reject an invalid ID",
			arrange: func(t *testing.T) string {
				return "not-a-uuid"
			},
			act: func(t *testing.T, id string) *httpexpect.Response {
				return expect.POST(router.QueryPath).WithJSON(map[string]string{
					"query": fmt.Sprintf(`query { todo(id: "%s") { id } }`, id),
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response, id string) {
				got.Status(http.StatusOK)
				e2e.GetErrors(got).Array().Value(0).Object().
					Value("extensions").Object().
					Value("code").String().IsEqual("INVALID_PARAMETER")
			},
			teardown: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.arrange(t)
			got := tt.act(t, id)
			tt.assert(t, got, id)
			tt.teardown(t)
		})
	}
}

func TestTodo_ListTodos(t *testing.T) {
	expect, client, teardown := e2e.Setup(t, e2e.SetupOption{
		TearDown: func(t *testing.T, client *entsql.Driver) {
			testutil.DropTodo(t, client)
		},
	})
	defer teardown()

	tests := []struct {
		name     string
		arrange  func(t *testing.T)
		act      func(t *testing.T) *httpexpect.Response
		assert   func(t *testing.T, got *httpexpect.Response)
		teardown func(t *testing.T)
	}{
		{
			name:    "It should return an empty list for an empty store",
			arrange: func(t *testing.T) {},
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.QueryPath).WithJSON(map[string]string{
					"query": `query { todos { id } }`,
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				e2e.GetData(got).Object().Value("todos").Array().IsEmpty()
			},
			teardown: func(t *testing.T) {},
		},
		{
			name: "It should list N-M todos after N creates and M deletes",
			arrange: func(t *testing.T) {
				ids := []string{}
				for i := 0; i < 5; i++ {
					ids = append(ids, createTodo(expect, fmt.Sprintf("todo %d", i)))
				}
				deleteTodo(expect, ids[0])
				deleteTodo(expect, ids[3])
			},
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST(router.QueryPath).WithJSON(map[string]string{
					"query": `query { todos { id title } }`,
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				todos := e2e.GetData(got).Object().Value("todos").Array()
				todos.Length().IsEqual(3)
				todos.Path("$[*].title").Array().ContainsOnly("todo 1", "todo 2", "todo 4")
			},
			teardown: func(t *testing.T) {
				testutil.DropTodo(t, client)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange(t)
			got := tt.act(t)
			tt.assert(t, got)
			tt.teardown(t)
		})
	}
}

func TestSchema_Introspection(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{})
	defer teardown()

	t.Run("It should name the query type", func(t *testing.T) {
		got := expect.POST(router.QueryPath).WithJSON(map[string]string{
			"query": `{ __schema { queryType { name } } }`,
		}).Expect().Status(http.StatusOK)

		got.JSON().Object().NotContainsKey("errors")
		e2e.GetData(got).Object().Value("__schema").Object().
			Value("queryType").Object().
			Value("name").String().IsEqual("Query")
	})

	t.Run("It should describe the Todo type", func(t *testing.T) {
		got := expect.GET(router.QueryPath).
			WithQuery("query", `{ __type(name: "Todo") { kind fields { name } } }`).
			Expect().
			Status(http.StatusOK)

		todo := e2e.GetData(got).Object().Value("__type").Object()
		todo.Value("kind").String().IsEqual("OBJECT")
		todo.Path("$.fields[*].name").Array().ContainsOnly(
			"id", "title", "description", "isCompleted", "status",
		)
	})
}
