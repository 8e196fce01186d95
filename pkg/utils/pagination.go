package utils

import "vidtube.com/pkg/constants"

// NormalizePage clamps a 1-indexed page and a positive page size.
func NormalizePage(page, size int64) (int64, int64) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = constants.DefaultPageSize
	}
	if size > constants.MaxPageSize {
		size = constants.MaxPageSize
	}
	return page, size
}

// TotalPages is ceil(count/size).
func TotalPages(count, size int64) int64 {
	if size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}
