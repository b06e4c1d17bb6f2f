package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPageCount tests the pages = ceil(total/limit) rule
func TestPageCount(t *testing.T) {
	assert.Equal(t, 0, PageCount(0, 20), "zero total means zero pages")
	assert.Equal(t, 1, PageCount(1, 20))
	assert.Equal(t, 1, PageCount(20, 20))
	assert.Equal(t, 2, PageCount(21, 20))
	assert.Equal(t, 3, PageCount(45, 20))
	assert.Equal(t, 45, PageCount(45, 1))
	assert.Equal(t, 0, PageCount(45, 0), "a zero limit yields zero pages")
}

// TestPaginationCheck tests the envelope consistency check
func TestPaginationCheck(t *testing.T) {
	ok := Pagination{Page: 2, Limit: 20, Total: 45, Pages: 3}
	assert.NoError(t, ok.Check())

	bad := Pagination{Page: 2, Limit: 20, Total: 45, Pages: 2}
	err := bad.Check()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pagination mismatch")
}
