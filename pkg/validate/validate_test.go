package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Username string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestPayloadValid(t *testing.T) {
	errs := Payload(&sample{
		Username: "alice42",
		Email:    "alice@example.com",
		Password: "longenough",
	})
	assert.Nil(t, errs)
}

func TestPayloadCollectsAllViolations(t *testing.T) {
	errs := Payload(&sample{
		Username: "a!",
		Email:    "not-an-email",
		Password: "short",
	})
	assert.Len(t, errs, 3)

	byField := make(map[string]string, len(errs))
	for _, fe := range errs {
		byField[fe.Field] = fe.Code
	}
	assert.Contains(t, byField, "username")
	assert.Equal(t, "email", byField["email"])
	assert.Equal(t, "min", byField["password"])
}

func TestPayloadUsesJSONNames(t *testing.T) {
	errs := Payload(&sample{})
	assert.Len(t, errs, 3)
	for _, fe := range errs {
		assert.NotContains(t, fe.Field, "Username")
		assert.Equal(t, "required", fe.Code)
	}
}
