package resolver

import (
	"fmt"
	"todos-go-backend/pkg/entity/model"

	gqlgen "github.com/99designs/gqlgen/graphql"
	"github.com/pkg/errors"
)

func errInvalidUUIDValue(v interface{}) error {
	return errors.Errorf("cannot marshal %T as UUID", v)
}

func inputFields(v interface{}, name string) (map[string]interface{}, error) {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, model.NewInvalidParamError(map[string]interface{}{name: fmt.Sprintf("%v", v)})
	}
	return m, nil
}

func stringField(m map[string]interface{}, name string) (string, error) {
	s, err := gqlgen.UnmarshalString(m[name])
	if err != nil {
		return "", model.NewInvalidParamError(map[string]interface{}{name: fmt.Sprintf("%v", m[name])})
	}
	return s, nil
}

func boolField(m map[string]interface{}, name string) (*bool, error) {
	v, ok := m[name]
	if !ok || v == nil {
		return nil, nil
	}
	b, err := gqlgen.UnmarshalBoolean(v)
	if err != nil {
		return nil, model.NewInvalidParamError(map[string]interface{}{name: fmt.Sprintf("%v", v)})
	}
	return &b, nil
}

func unmarshalCreateTodoInput(v interface{}) (model.CreateTodoInput, error) {
	var input model.CreateTodoInput

	m, err := inputFields(v, "input")
	if err != nil {
		return input, err
	}
	if input.Title, err = stringField(m, "title"); err != nil {
		return input, err
	}
	if input.Description, err = stringField(m, "description"); err != nil {
		return input, err
	}
	if input.Status, err = stringField(m, "status"); err != nil {
		return input, err
	}
	if input.IsCompleted, err = boolField(m, "isCompleted"); err != nil {
		return input, err
	}
	return input, nil
}

func unmarshalUpdateTodoInput(v interface{}) (model.UpdateTodoInput, error) {
	var input model.UpdateTodoInput

	m, err := inputFields(v, "input")
	if err != nil {
		return input, err
	}
	if input.Title, err = stringField(m, "title"); err != nil {
		return input, err
	}
	if input.Description, err = stringField(m, "description"); err != nil {
		return input, err
	}
	if input.Status, err = stringField(m, "status"); err != nil {
		return input, err
	}
	isCompleted, err := boolField(m, "isCompleted")
	if err != nil {
		return input, err
	}
	if isCompleted != nil {
		input.IsCompleted = *isCompleted
	}
	return input, nil
}
