package validator

import (
	"testing"

	domainerrors "prestadores/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string `json:"nome" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=6"`
}

var sampleRules = []Rule{
	{Tag: "required", Err: domainerrors.ErrRequiredFields},
	{Field: "senha", Tag: "min", Err: domainerrors.ErrPasswordTooShort},
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "Ana", Email: "ana@x.com", Password: "secret1"}))
	assert.Error(t, v.Validate(&sample{}))
}

func TestTranslate(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		input sample
		want  *domainerrors.BaseError
	}{
		{name: "missing name", input: sample{Email: "ana@x.com", Password: "secret1"}, want: domainerrors.ErrRequiredFields},
		{name: "required wins over min", input: sample{Email: "ana@x.com", Password: "123"}, want: domainerrors.ErrRequiredFields},
		{name: "short password", input: sample{Name: "Ana", Email: "ana@x.com", Password: "12345"}, want: domainerrors.ErrPasswordTooShort},
		{name: "bad email", input: sample{Name: "Ana", Email: "not-an-email", Password: "secret1"}, want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.input)
			require.Error(t, err)

			got := Translate(err, sampleRules...)

			assert.True(t, errors.Is(got, tt.want), "got %v", got)
		})
	}
}

func TestTranslate_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&sample{Name: "Ana", Email: "nope", Password: "secret1"})

	got := Translate(err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(got, &appErr))
	assert.Equal(t, "invalid fields: email", appErr.Details())
}

func TestTranslate_NonValidationError(t *testing.T) {
	cause := errors.New("boom")

	got := Translate(cause, sampleRules...)

	assert.ErrorIs(t, got, cause)
}
