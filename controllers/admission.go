package controllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"admission-portal-api/models"
	"admission-portal-api/services"
	"admission-portal-api/utils"

	"github.com/gin-gonic/gin"
)

// AdmissionController exposes the admission endpoints over the admission
// service.
type AdmissionController struct {
	svc *services.AdmissionService
}

func NewAdmissionController(svc *services.AdmissionService) *AdmissionController {
	return &AdmissionController{svc: svc}
}

type SubmitAdmissionRequest struct {
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
	Gender      string `json:"gender" binding:"required"`
	Address     string `json:"address" binding:"required"`
	City        string `json:"city" binding:"required"`
	State       string `json:"state" binding:"required"`
	Pincode     string `json:"pincode" binding:"required"`

	AcademicCourse        string   `json:"academicCourse" binding:"required"`
	PreviousQualification string   `json:"previousQualification" binding:"required"`
	Percentage            *float64 `json:"percentage" binding:"required"`

	FatherName    string `json:"fatherName" binding:"required"`
	MotherName    string `json:"motherName" binding:"required"`
	GuardianPhone string `json:"guardianPhone" binding:"required"`
}

// Submit handles a new admission application. Applicant data is set once
// here; there is no endpoint that edits it afterwards.
func (ac *AdmissionController) Submit(c *gin.Context) {
	var req SubmitAdmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Error submitting admission application", "error": err.Error()})
		return
	}

	if !models.ValidGender(req.Gender) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Gender must be Male, Female or Other"})
		return
	}
	if *req.Percentage < 0 || *req.Percentage > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Percentage must be between 0 and 100"})
		return
	}

	dob, err := parseRequestDate(req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid dateOfBirth"})
		return
	}

	adm := models.Admission{
		FullName:              utils.SanitizeInput(req.FullName),
		Email:                 strings.ToLower(utils.SanitizeInput(req.Email)),
		Phone:                 utils.SanitizeInput(req.Phone),
		DateOfBirth:           dob,
		Gender:                req.Gender,
		Address:               utils.SanitizeInput(req.Address),
		City:                  utils.SanitizeInput(req.City),
		State:                 utils.SanitizeInput(req.State),
		Pincode:               utils.SanitizeInput(req.Pincode),
		AcademicCourse:        utils.SanitizeInput(req.AcademicCourse),
		PreviousQualification: utils.SanitizeInput(req.PreviousQualification),
		Percentage:            *req.Percentage,
		FatherName:            utils.SanitizeInput(req.FatherName),
		MotherName:            utils.SanitizeInput(req.MotherName),
		GuardianPhone:         utils.SanitizeInput(req.GuardianPhone),
	}

	if err := ac.svc.Create(&adm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error submitting admission application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Admission application submitted successfully! You will be notified soon.",
		"data":    adm,
	})
}

// Get returns one admission by id (admin only).
func (ac *AdmissionController) Get(c *gin.Context) {
	adm, err := ac.svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAdmissionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Admission not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching admission"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": adm})
}

func parseRequestDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
