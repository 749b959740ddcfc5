// Package handlers contains the gin HTTP handlers for the catalog
// admin API and the public read endpoints.
package handlers

import (
	"github.com/gin-gonic/gin"

	"talenthub.backend/pkg/utils"
)

// strQuery returns a pointer to a query value, nil when absent or empty.
func strQuery(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

// boolQuery parses a query value as a bool pointer, nil when absent.
// Anything that is not "true" or "1" counts as false.
func boolQuery(c *gin.Context, name string) *bool {
	v := c.Query(name)
	if v == "" {
		return nil
	}
	b := v == "true" || v == "1"
	return &b
}

// pagination reads page/limit from the query string. Absent or invalid
// values fall back to page 1, no limit; the admin UI fetches whole
// collections.
func pagination(c *gin.Context) utils.PaginationParams {
	var params utils.PaginationParams
	_ = c.ShouldBindQuery(&params)
	return utils.GetPaginationParams(params.Page, params.Limit)
}
