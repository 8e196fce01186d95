package errno

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConvertErr(t *testing.T) {
	assert.Equal(t, SuccessCode, ConvertErr(nil).ErrCode)
	assert.Equal(t, NotFoundErrCode, ConvertErr(gorm.ErrRecordNotFound).ErrCode)
	assert.Equal(t, ConflictErrCode, ConvertErr(gorm.ErrDuplicatedKey).ErrCode)

	e := ConvertErr(NotFoundErr.WithMessage("video not found"))
	assert.Equal(t, NotFoundErrCode, e.ErrCode)
	assert.Equal(t, "video not found", e.ErrMsg)
	assert.Equal(t, http.StatusNotFound, e.StatusCode)

	plain := ConvertErr(errors.New("boom"))
	assert.Equal(t, ServiceErrCode, plain.ErrCode)
	assert.Equal(t, "boom", plain.ErrMsg)
}

func TestWithMessageDoesNotMutate(t *testing.T) {
	custom := NotFoundErr.WithMessage("tweet not found")
	assert.Equal(t, "tweet not found", custom.ErrMsg)
	assert.Equal(t, "resource not found", NotFoundErr.ErrMsg)
}

func TestWithErrors(t *testing.T) {
	fields := []FieldError{
		{Field: "username", Message: "username is required", Code: "required"},
		{Field: "email", Message: "email must be a valid email address", Code: "email"},
	}
	e := ParamErr.WithMessage("validation failed").WithErrors(fields)
	assert.Len(t, e.Errors, 2)
	assert.Empty(t, ParamErr.Errors)
	assert.Equal(t, http.StatusBadRequest, e.StatusCode)
}
