package errno

import (
	"errors"
	"fmt"
	"net/http"

	"gorm.io/gorm"
)

const (
	SuccessCode        = int64(0)
	ServiceErrCode     = int64(10001)
	ParamErrCode       = int64(10002)
	AuthorizationCode  = int64(10003)
	NotFoundErrCode    = int64(10004)
	ConflictErrCode    = int64(10005)
	MysqlErrCode       = int64(10006)
	RedisErrCode       = int64(10007)
	OssErrCode         = int64(10008)
	UserExistedCode    = int64(10009)
	SelfSubscribeCode  = int64(10010)
)

// FieldError is one structured schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ErrNo struct {
	ErrCode    int64
	ErrMsg     string
	StatusCode int
	Errors     []FieldError
}

func (e ErrNo) Error() string {
	return fmt.Sprintf("err_code=%d, status_code=%d, err_msg=%s", e.ErrCode, e.StatusCode, e.ErrMsg)
}

func NewErrNo(code int64, msg string, status int) ErrNo {
	return ErrNo{ErrCode: code, ErrMsg: msg, StatusCode: status}
}

func (e ErrNo) WithMessage(msg string) ErrNo {
	e.ErrMsg = msg
	return e
}

// WithErrors attaches field-level violations, all of them at once.
func (e ErrNo) WithErrors(errs []FieldError) ErrNo {
	e.Errors = errs
	return e
}

var (
	Success                = NewErrNo(SuccessCode, "success", http.StatusOK)
	ServiceErr             = NewErrNo(ServiceErrCode, "service internal error", http.StatusInternalServerError)
	ParamErr               = NewErrNo(ParamErrCode, "bad request", http.StatusBadRequest)
	AuthorizationFailedErr = NewErrNo(AuthorizationCode, "unauthorized request", http.StatusUnauthorized)
	NotFoundErr            = NewErrNo(NotFoundErrCode, "resource not found", http.StatusNotFound)
	ConflictErr            = NewErrNo(ConflictErrCode, "resource already exists", http.StatusConflict)
	MysqlErr               = NewErrNo(MysqlErrCode, "database operation failed", http.StatusInternalServerError)
	RedisErr               = NewErrNo(RedisErrCode, "cache operation failed", http.StatusInternalServerError)
	OssErr                 = NewErrNo(OssErrCode, "media storage operation failed", http.StatusInternalServerError)
	UserExistedErr         = NewErrNo(UserExistedCode, "username or email already taken", http.StatusConflict)
	SelfSubscribeErr       = NewErrNo(SelfSubscribeCode, "cannot subscribe to own channel", http.StatusBadRequest)
)

// ConvertErr normalizes any error into an ErrNo. Store sentinels map onto the
// taxonomy; everything else becomes ServiceErr carrying the original message.
func ConvertErr(err error) ErrNo {
	if err == nil {
		return Success
	}
	var e ErrNo
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundErr
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ConflictErr
	}
	return ServiceErr.WithMessage(err.Error())
}
