package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		name     string
		pageNum  int64
		pageSize int64
		wantNum  int64
		wantSize int64
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 10, 1, 10},
		{"negative limit", 1, -5, 1, 10},
		{"limit above ceiling", 2, 500, 2, 100},
		{"limit at ceiling", 2, 100, 2, 100},
		{"normal", 3, 25, 3, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := NormalizePagination(c.pageNum, c.pageSize)
			assert.Equal(t, c.wantNum, p.PageNum)
			assert.Equal(t, c.wantSize, p.PageSize)
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	p := NormalizePagination(3, 20)
	assert.Equal(t, 40, p.Offset())
	assert.Equal(t, 20, p.Limit())
}

func TestNormalizeSort(t *testing.T) {
	allowed := map[string]bool{"created_at": true, "visit_count": true}

	s := NormalizeSort("visit_count", "asc", allowed)
	assert.Equal(t, "visit_count asc", s.OrderClause())

	s = NormalizeSort("visit_count", "bogus", allowed)
	assert.Equal(t, "visit_count desc", s.OrderClause())

	s = NormalizeSort("password; DROP TABLE videos", "desc", allowed)
	assert.Equal(t, "created_at desc", s.OrderClause())

	s = NormalizeSort("", "", allowed)
	assert.Equal(t, "created_at desc", s.OrderClause())
}
