package model_test

import (
	"errors"
	"testing"
	"todos-go-backend/pkg/entity/model"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	id := uuid.MustParse("00000000-0000-0000-0000-000000000000")

	tests := []struct {
		name   string
		act    func() error
		assert func(t *testing.T, err error)
	}{
		{
			name: "Not found message should contain the id",
			act: func() error {
				return model.NewNotFoundError(nil, id)
			},
			assert: func(t *testing.T, err error) {
				assert.True(t, model.IsNotFoundError(err))
				assert.False(t, model.IsConflictError(err))
				assert.Contains(t, err.Error(), id.String())

				var e *model.Error
				assert.True(t, errors.As(err, &e))
				assert.Equal(t, model.NotFoundError, e.Extensions["code"])
			},
		},
		{
			name: "Conflict should be found through a multierror",
			act: func() error {
				return multierror.Append(model.NewConflictError(nil, id), errors.New("rollback failed"))
			},
			assert: func(t *testing.T, err error) {
				assert.True(t, model.IsConflictError(err))
			},
		},
		{
			name: "DB error should keep its cause",
			act: func() error {
				return model.NewDBError(errors.New("connection refused"))
			},
			assert: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "connection refused")
				assert.True(t, model.IsDBError(err))
				assert.False(t, model.IsNotFoundError(err))
			},
		},
		{
			name: "Plain errors have no code",
			act: func() error {
				return errors.New("boom")
			},
			assert: func(t *testing.T, err error) {
				assert.False(t, model.IsNotFoundError(err))
				assert.False(t, model.IsConflictError(err))
				assert.False(t, model.IsDBError(err))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.act()
			tt.assert(t, err)
		})
	}
}

func TestUnmarshalUUID(t *testing.T) {
	id := uuid.New()

	got, err := model.UnmarshalUUID(id.String())
	assert.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = model.UnmarshalUUID("not-a-uuid")
	assert.Error(t, err)

	var e *model.Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, model.InvalidParamError, e.Code)

	_, err = model.UnmarshalUUID(42)
	assert.Error(t, err)
}
