package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bulletin/internal/shared/constants"
	"bulletin/internal/shared/errors"
)

func TestValidatePagination(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantErr      bool
		wantPage     int
		wantPageSize int
	}{
		{name: "valid values - no adjustment needed", page: 2, pageSize: 20, wantPage: 2, wantPageSize: 20},
		{name: "zero page - rejected", page: 0, pageSize: 20, wantErr: true},
		{name: "negative page - rejected", page: -1, pageSize: 20, wantErr: true},
		{name: "zero pageSize - rejected", page: 1, pageSize: 0, wantErr: true},
		{name: "pageSize exceeds MaxPageSize - clamped", page: 1, pageSize: 200, wantPage: 1, wantPageSize: constants.MaxPageSize},
		{name: "pageSize equals MaxPageSize - kept", page: 1, pageSize: constants.MaxPageSize, wantPage: 1, wantPageSize: constants.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidatePagination(tt.page, tt.pageSize)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		queryParams  string
		wantErr      bool
		wantPage     int
		wantPageSize int
	}{
		{name: "no params - use defaults", queryParams: "", wantPage: constants.DefaultPage, wantPageSize: constants.DefaultPageSize},
		{name: "valid page and page_size", queryParams: "page=3&page_size=25", wantPage: 3, wantPageSize: 25},
		{name: "malformed page - rejected", queryParams: "page=abc&page_size=20", wantErr: true},
		{name: "malformed page_size - rejected", queryParams: "page=1&page_size=ten", wantErr: true},
		{name: "page_size exceeds max - clamped", queryParams: "page=1&page_size=500", wantPage: 1, wantPageSize: constants.MaxPageSize},
		{name: "zero page - rejected", queryParams: "page=0&page_size=10", wantErr: true},
		{name: "negative page_size - rejected", queryParams: "page=1&page_size=-5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.queryParams, nil)

			got, err := ParsePagination(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantPageSize, got.PageSize)
		})
	}
}

func TestPagination_Offset(t *testing.T) {
	assert.Equal(t, 0, Pagination{Page: 1, PageSize: 20}.Offset())
	assert.Equal(t, 40, Pagination{Page: 3, PageSize: 20}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, 20))
	assert.Equal(t, 1, TotalPages(20, 20))
	assert.Equal(t, 2, TotalPages(21, 20))
}
