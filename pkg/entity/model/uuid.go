package model

import (
	"fmt"
	"io"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/google/uuid"
)

// MarshalUUID writes id as a GraphQL UUID scalar.
func MarshalUUID(id uuid.UUID) graphql.Marshaler {
	return graphql.WriterFunc(func(w io.Writer) {
		_, _ = io.WriteString(w, strconv.Quote(id.String()))
	})
}

// UnmarshalUUID reads a GraphQL UUID scalar.
func UnmarshalUUID(v interface{}) (uuid.UUID, error) {
	switch v := v.(type) {
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, NewInvalidParamError(map[string]interface{}{"id": v})
		}
		return id, nil
	case uuid.UUID:
		return v, nil
	case []byte:
		return UnmarshalUUID(string(v))
	default:
		return uuid.Nil, NewInvalidParamError(map[string]interface{}{"id": fmt.Sprintf("%v", v)})
	}
}
