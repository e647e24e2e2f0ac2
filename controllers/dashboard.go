package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"admission-portal-api/config"
	"admission-portal-api/models"
	"admission-portal-api/services"

	"github.com/gin-gonic/gin"
)

const dashboardCacheTTL = 60 * time.Second

// GetDashboardStats returns admission analytics for the admin dashboard:
// totals per status, per-course counts, the latest submissions and a
// six-month trend. Results are cached in redis when available; admission
// writes drop the cache.
func GetDashboardStats(c *gin.Context) {
	if cached, ok := readDashboardCache(c.Request.Context()); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", cached)
		return
	}

	stats, err := buildDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error building dashboard stats"})
		return
	}

	body := gin.H{"success": true, "data": stats}
	writeDashboardCache(c.Request.Context(), body)
	c.JSON(http.StatusOK, body)
}

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type courseCount struct {
	AcademicCourse string `json:"academicCourse"`
	Count          int64  `json:"count"`
}

type monthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

func buildDashboardStats() (gin.H, error) {
	var rows []statusCount
	err := config.DB.Model(&models.Admission{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	byStatus := gin.H{
		models.StatusPending:  int64(0),
		models.StatusApproved: int64(0),
		models.StatusRejected: int64(0),
	}
	var total int64
	for _, row := range rows {
		byStatus[row.Status] = row.Count
		total += row.Count
	}

	var byCourse []courseCount
	err = config.DB.Model(&models.Admission{}).
		Select("academic_course, COUNT(*) AS count").
		Group("academic_course").
		Order("count DESC").
		Limit(10).
		Scan(&byCourse).Error
	if err != nil {
		return nil, err
	}

	recent := []models.Admission{}
	err = config.DB.Order("application_date DESC").Limit(5).Find(&recent).Error
	if err != nil {
		return nil, err
	}

	since := time.Now().AddDate(0, -5, 0)
	since = time.Date(since.Year(), since.Month(), 1, 0, 0, 0, 0, since.Location())
	var trend []monthCount
	err = config.DB.Model(&models.Admission{}).
		Select("DATE_FORMAT(application_date, '%Y-%m') AS month, COUNT(*) AS count").
		Where("application_date >= ?", since).
		Group("month").
		Order("month ASC").
		Scan(&trend).Error
	if err != nil {
		return nil, err
	}

	return gin.H{
		"total":        total,
		"byStatus":     byStatus,
		"byCourse":     byCourse,
		"recent":       recent,
		"monthlyTrend": trend,
	}, nil
}

func readDashboardCache(ctx context.Context) ([]byte, bool) {
	if config.Cache == nil {
		return nil, false
	}
	data, err := config.Cache.Get(ctx, services.DashboardCacheKey).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func writeDashboardCache(ctx context.Context, body gin.H) {
	if config.Cache == nil {
		return
	}
	data, err := json.Marshal(body)
	if err != nil {
		return
	}
	if err := config.Cache.Set(ctx, services.DashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
		log.Printf("failed to cache dashboard stats: %v", err)
	}
}
