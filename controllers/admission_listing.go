package controllers

import (
	"net/http"

	"admission-portal-api/services"

	"github.com/gin-gonic/gin"
)

// List returns admissions matching the filter parameters (admin only).
// Without page/limit it returns the full filtered set (unbounded mode, kept
// for exports and legacy callers); with either, a bounded page plus count
// metadata.
func (ac *AdmissionController) List(c *gin.Context) {
	query := services.ParseListQuery(c.Request.URL.Query())

	if !query.Paginated {
		admissions, err := ac.svc.ListAll(query)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching admissions"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"count":   len(admissions),
			"data":    admissions,
		})
		return
	}

	admissions, meta, err := ac.svc.ListPage(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching admissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(admissions),
		"data":    admissions,
		"meta":    meta,
	})
}
