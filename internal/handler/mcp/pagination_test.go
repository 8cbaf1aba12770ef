package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate_FirstPageWithMore(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, info := paginate(items, 2, 0)

	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, 5, info.TotalCount)
	assert.Equal(t, 2, info.ReturnedCount)
	assert.True(t, info.HasMore)
	require.NotNil(t, info.NextOffset)
	assert.Equal(t, 2, *info.NextOffset)
}

func TestPaginate_LastPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, info := paginate(items, 3, 3)

	assert.Equal(t, []int{4, 5}, page)
	assert.False(t, info.HasMore)
	assert.Nil(t, info.NextOffset)
	assert.Equal(t, 2, info.ReturnedCount)
}

func TestPaginate_OffsetBeyondEnd(t *testing.T) {
	page, info := paginate([]int{1, 2}, 10, 100)

	assert.Empty(t, page)
	assert.False(t, info.HasMore)
	assert.Nil(t, info.NextOffset)
	assert.Equal(t, 2, info.TotalCount)
}

func TestPaginate_NegativeArgsClamped(t *testing.T) {
	page, info := paginate([]int{1, 2, 3}, -1, -5)

	assert.Empty(t, page)
	assert.Equal(t, 0, info.Offset)
	assert.Equal(t, 0, info.Limit)
	assert.True(t, info.HasMore)
}

func TestPaginate_EmptyInput(t *testing.T) {
	page, info := paginate([]int(nil), 25, 0)

	assert.Empty(t, page)
	assert.Equal(t, 0, info.TotalCount)
	assert.False(t, info.HasMore)
}
