package handlers

import (
	"fmt"
	"net/http"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/config"
	"vidtube.com/pkg/errno"
)

// Response is the uniform envelope every route answers with.
type Response struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    interface{}        `json:"data,omitempty"`
	Errors  []errno.FieldError `json:"errors,omitempty"`
	Stack   string             `json:"stack,omitempty"`
}

// SendResponse writes the envelope. A nil or Success err means an OK payload;
// anything else is normalized through the error taxonomy and the HTTP status
// follows the mapped category. The stack rides along outside production only.
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	e := errno.ConvertErr(err)
	if e.ErrCode == errno.SuccessCode {
		c.JSON(http.StatusOK, Response{
			Success: true,
			Message: e.ErrMsg,
			Data:    data,
		})
		return
	}
	resp := Response{
		Success: false,
		Message: e.ErrMsg,
		Errors:  e.Errors,
	}
	if !config.IsProduction() && err != nil {
		resp.Stack = fmt.Sprintf("%+v", err)
	}
	c.JSON(e.StatusCode, resp)
}

// SendUnauthorized is the envelope writer wired into the jwt middleware.
func SendUnauthorized(c *app.RequestContext, code int, message string) {
	c.JSON(code, Response{
		Success: false,
		Message: message,
	})
}
