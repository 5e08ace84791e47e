package utils

import (
	"fmt"

	"VideoTube.com/pkg/constants"
)

// Pagination carries normalized paging values. Clamping happens here once so
// every paged view shares the same floor and ceiling.
type Pagination struct {
	PageNum  int64
	PageSize int64
}

func NormalizePagination(pageNum, pageSize int64) Pagination {
	if pageNum < 1 {
		pageNum = constants.DefaultPage
	}
	if pageSize <= 0 {
		pageSize = constants.DefaultLimit
	}
	if pageSize > constants.MaxLimit {
		pageSize = constants.MaxLimit
	}
	return Pagination{PageNum: pageNum, PageSize: pageSize}
}

func (p Pagination) Offset() int {
	return int((p.PageNum - 1) * p.PageSize)
}

func (p Pagination) Limit() int {
	return int(p.PageSize)
}

// Sort is a normalized order-by. The column is taken from a per-view whitelist
// so a caller can never sort by an arbitrary expression.
type Sort struct {
	Column    string
	Direction string
}

func NormalizeSort(sortBy, sortType string, allowed map[string]bool) Sort {
	if !allowed[sortBy] {
		sortBy = constants.DefaultSortBy
	}
	if sortType != constants.SortOrderAsc {
		sortType = constants.SortOrderDesc
	}
	return Sort{Column: sortBy, Direction: sortType}
}

func (s Sort) OrderClause() string {
	return fmt.Sprintf("%s %s", s.Column, s.Direction)
}
