package e2e

import (
	"net/http/httptest"
	"testing"
	"todos-go-backend/config"
	"todos-go-backend/pkg/adapter/resolver"
	"todos-go-backend/pkg/infrastructure/graphql"
	"todos-go-backend/pkg/infrastructure/router"
	"todos-go-backend/pkg/registry"
	"todos-go-backend/testutil"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/gavv/httpexpect/v2"
	"go.uber.org/zap/zaptest"
)

// SetupOption is an option of Setup
type SetupOption struct {
	TearDown func(t *testing.T, client *entsql.Driver)
}

// Setup runs the whole app behind an httptest server backed by the e2e store.
func Setup(t *testing.T, option SetupOption) (expect *httpexpect.Expect, client *entsql.Driver, teardown func()) {
	t.Helper()
	testutil.ReadConfigE2E()

	client = testutil.NewDBClient(t)
	logger := zaptest.NewLogger(t)

	ctrl := registry.New(client, logger).NewController()
	srv, err := graphql.NewServer(resolver.NewSchema(ctrl, logger), logger)
	if err != nil {
		t.Fatalf("failed building graphql server: %v", err)
	}

	e := router.New(srv, router.Options{
		Logger:         logger,
		AllowedOrigins: config.C.Cors.AllowedOrigins,
	})

	ts := httptest.NewServer(e)

	return httpexpect.Default(t, ts.URL), client, func() {
		if option.TearDown != nil {
			option.TearDown(t, client)
		}
		ts.Close()
		_ = client.Close()
	}
}

// GetData gets data from graphql response.
func GetData(e *httpexpect.Response) *httpexpect.Value {
	return e.JSON().Path("$.data")
}

// GetObject return data from path.
// Path returns a new Value object for child object(s) matching given
// JSONPath expression.
// Example 1:
//
//	json := `{"users": [{"name": "john"}, {"name": "bob"}]}`
//	value := NewValue(t, json)
//
//	value.Path("$.users[0].name").String().IsEqual("john")
//	value.Path("$.users[1].name").String().IsEqual("bob")
func GetObject(obj *httpexpect.Object, path string) *httpexpect.Object {
	return obj.Path("$." + path).Object()
}

// GetErrors gets errors from graphql response.
func GetErrors(e *httpexpect.Response) *httpexpect.Value {
	return e.JSON().Path("$.errors")
}
