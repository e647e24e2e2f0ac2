package controllers

import (
	"errors"
	"net/http"

	"admission-portal-api/services"

	"github.com/gin-gonic/gin"
)

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus overwrites an admission's status (admin only). The target
// value only has to be a known status; re-applying the current status is
// allowed and still notifies the applicant.
func (ac *AdmissionController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status value"})
		return
	}

	adm, err := ac.svc.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status value"})
		case errors.Is(err, services.ErrAdmissionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admission not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": adm})
}

// ResendEmail re-sends the email for the admission's current status (admin
// only). Unlike the workflow dispatch this one is synchronous so the
// operator sees the outcome.
func (ac *AdmissionController) ResendEmail(c *gin.Context) {
	_, result, err := ac.svc.Resend(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAdmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admission not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error resending email"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"emailed": result.Sent,
			"meta":    result,
		},
	})
}

// EmailLogs returns the notification audit trail (admin only), optionally
// filtered by admission id.
func (ac *AdmissionController) EmailLogs(c *gin.Context) {
	logs, err := ac.svc.EmailLogs(c.Query("admission_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching email logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(logs),
		"data":    logs,
	})
}
