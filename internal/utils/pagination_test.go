package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestGetPaginationParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		want  PaginationParams
	}{
		{"", PaginationParams{Page: 1, Limit: 20, Offset: 0}},
		{"?page=3&limit=10", PaginationParams{Page: 3, Limit: 10, Offset: 20}},
		{"?page=0&limit=0", PaginationParams{Page: 1, Limit: 20, Offset: 0}},
		{"?page=abc&limit=-5", PaginationParams{Page: 1, Limit: 20, Offset: 0}},
		{"?page=2&limit=500", PaginationParams{Page: 2, Limit: 100, Offset: 100}},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/sales"+tc.query, nil)
		require.Equal(t, tc.want, GetPaginationParams(c), tc.query)
	}
}

func TestTotalPages(t *testing.T) {
	require.Equal(t, 0, TotalPages(0, 20))
	require.Equal(t, 1, TotalPages(20, 20))
	require.Equal(t, 2, TotalPages(21, 20))
	require.Equal(t, 0, TotalPages(5, 0))
}
