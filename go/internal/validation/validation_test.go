package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Username string `json:"username" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	err := Struct(signupForm{Username: "alice", Email: "not-an-email"})
	require.Error(t, err)

	var verrs Errors
	require.True(t, errors.As(err, &verrs))
	assert.True(t, verrs.Has("email"))
	assert.True(t, verrs.Has("password"))
	assert.False(t, verrs.Has("username"))
	assert.Contains(t, err.Error(), "password is required")
	assert.Contains(t, err.Error(), "email format is invalid")
}

func TestStructAcceptsValidInput(t *testing.T) {
	assert.NoError(t, Struct(signupForm{Username: "alice", Email: "alice@test.com", Password: "secret"}))
}
