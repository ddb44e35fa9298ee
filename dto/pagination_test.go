package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	p := Pagination{}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.PageSize)

	p = Pagination{Page: -3, PageSize: 500}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PageSize)

	p = Pagination{Page: 4, PageSize: 25}
	p.Normalize()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.PageSize)
}

func TestNewListMeta(t *testing.T) {
	meta := NewListMeta(0, 1, 10)
	assert.Equal(t, 0, meta.TotalPages)

	meta = NewListMeta(25, 2, 10)
	assert.Equal(t, int64(25), meta.TotalCount)
	assert.Equal(t, 3, meta.TotalPages)

	meta = NewListMeta(30, 1, 10)
	assert.Equal(t, 3, meta.TotalPages)
}
