package handlers

import (
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
)

// PageArgs reads the page and limit query parameters. Unparseable values fall
// back to zero and get normalized downstream.
func PageArgs(c *app.RequestContext) (page, pageSize int64) {
	page, _ = strconv.ParseInt(c.Query("page"), 10, 64)
	pageSize, _ = strconv.ParseInt(c.Query("limit"), 10, 64)
	return page, pageSize
}
