package pagination_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"lexvault/internal/domain"
	"lexvault/internal/pagination"
)

func TestParams_Validate(t *testing.T) {
	assert.NoError(t, pagination.Params{Page: 1, PageSize: 10}.Validate())

	for _, p := range []pagination.Params{
		{Page: 0, PageSize: 10},
		{Page: -1, PageSize: 10},
		{Page: 1, PageSize: 0},
		{Page: 1, PageSize: -5},
		{Page: 1, PageSize: pagination.MaxPageSize + 1},
	} {
		err := p.Validate()
		assert.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, PageSize: 10}.Offset())
	assert.Equal(t, 10, pagination.Params{Page: 2, PageSize: 10}.Offset())
	assert.Equal(t, 50, pagination.Params{Page: 3, PageSize: 25}.Offset())
}

func TestNewPage_MiddlePage(t *testing.T) {
	items := make([]int, 10)
	page := pagination.NewPage(items, 25, pagination.Params{Page: 2, PageSize: 10})

	assert.Len(t, page.Items, 10)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasNext)
	assert.True(t, page.HasPrevious)
}

func TestNewPage_FirstAndLastPage(t *testing.T) {
	first := pagination.NewPage(make([]int, 10), 25, pagination.Params{Page: 1, PageSize: 10})
	assert.False(t, first.HasPrevious)
	assert.True(t, first.HasNext)

	last := pagination.NewPage(make([]int, 5), 25, pagination.Params{Page: 3, PageSize: 10})
	assert.True(t, last.HasPrevious)
	assert.False(t, last.HasNext)
}

func TestNewPage_Empty(t *testing.T) {
	page := pagination.NewPage[string](nil, 0, pagination.Params{Page: 1, PageSize: 10})

	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasNext)
	assert.False(t, page.HasPrevious)
}

func TestNewPage_ExactMultiple(t *testing.T) {
	page := pagination.NewPage(make([]int, 10), 20, pagination.Params{Page: 2, PageSize: 10})

	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
}
