package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vidtube.com/pkg/constants"
)

func TestNormalizePage(t *testing.T) {
	page, size := NormalizePage(0, 0)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, constants.DefaultPageSize, size)

	page, size = NormalizePage(-3, -1)
	assert.Equal(t, int64(1), page)
	assert.Equal(t, constants.DefaultPageSize, size)

	page, size = NormalizePage(2, 500)
	assert.Equal(t, int64(2), page)
	assert.Equal(t, constants.MaxPageSize, size)

	page, size = NormalizePage(7, 25)
	assert.Equal(t, int64(7), page)
	assert.Equal(t, int64(25), size)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), TotalPages(0, 10))
	assert.Equal(t, int64(1), TotalPages(1, 10))
	assert.Equal(t, int64(1), TotalPages(10, 10))
	assert.Equal(t, int64(2), TotalPages(11, 10))
	assert.Equal(t, int64(3), TotalPages(25, 10))
	assert.Equal(t, int64(0), TotalPages(25, 0))
}
