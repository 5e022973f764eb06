package pagination_test

import (
	"net/http/httptest"
	"testing"

	"sellos/pkg/pagination"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  pagination.Params
	}{
		{"", pagination.Params{Page: 1, Limit: 20, Offset: 0}},
		{"?page=3&limit=10", pagination.Params{Page: 3, Limit: 10, Offset: 20}},
		{"?page=0&limit=0", pagination.Params{Page: 1, Limit: 20, Offset: 0}},
		{"?page=x&limit=500", pagination.Params{Page: 1, Limit: 100, Offset: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/"+tt.query, nil)
			assert.Equal(t, tt.want, pagination.Parse(c))
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, pagination.TotalPages(0, 20))
	assert.Equal(t, 1, pagination.TotalPages(20, 20))
	assert.Equal(t, 3, pagination.TotalPages(41, 20))
	assert.Equal(t, 0, pagination.TotalPages(5, 0))
}
