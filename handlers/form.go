package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// formValue reads a field from the POST body or, failing that, the query
// string. Blank values fall back to def.
func formValue(c *gin.Context, key, def string) string {
	if v, ok := c.GetPostForm(key); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	if v, ok := c.GetQuery(key); ok {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return def
}
