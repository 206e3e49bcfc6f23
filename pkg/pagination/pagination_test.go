package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func parseQuery(query string) Params {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/audit-logs?"+query, nil)
	return Parse(c)
}

func TestParse(t *testing.T) {
	tests := []struct {
		query string
		want  Params
	}{
		{"", Params{Page: 1, Limit: 20, Offset: 0}},
		{"page=3&limit=10", Params{Page: 3, Limit: 10, Offset: 20}},
		{"page=0&limit=0", Params{Page: 1, Limit: 20, Offset: 0}},
		{"page=abc&limit=-5", Params{Page: 1, Limit: 20, Offset: 0}},
		{"page=2&limit=500", Params{Page: 2, Limit: 100, Offset: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, parseQuery(tt.query))
		})
	}
}

func TestParams_Meta(t *testing.T) {
	p := Params{Page: 2, Limit: 20, Offset: 20}
	assert.Equal(t, Meta{Page: 2, Limit: 20, Total: 41, TotalPages: 3}, p.Meta(41))
	assert.Equal(t, 0, p.Meta(0).TotalPages)
	assert.Equal(t, 1, p.Meta(20).TotalPages)
}
