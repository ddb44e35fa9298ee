package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query    string
		page     int
		pageSize int
	}{
		{"", 1, 10},
		{"?page=3&pageSize=25", 3, 25},
		{"?page=0&pageSize=-5", 1, 10},
		{"?page=abc&pageSize=xyz", 1, 10},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)

		p := parsePagination(c)
		assert.Equal(t, tc.page, p.Page, tc.query)
		assert.Equal(t, tc.pageSize, p.PageSize, tc.query)
	}
}

func TestRequireUUIDParamRejectsMalformedIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, bad := range []string{"123", "not-a-uuid", "", "T-TSV-001"} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Params = gin.Params{{Key: "id", Value: bad}}

		_, ok := requireUUIDParam(c, "id")
		assert.False(t, ok, bad)
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}

func TestRequireUUIDParamAcceptsUUIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "1f1c0a9e-8a3f-4f6e-9a36-5ea7c1b2d3e4"}}

	id, ok := requireUUIDParam(c, "id")
	assert.True(t, ok)
	assert.Equal(t, "1f1c0a9e-8a3f-4f6e-9a36-5ea7c1b2d3e4", id)
}
