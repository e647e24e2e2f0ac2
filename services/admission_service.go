package services

import (
	"context"
	"errors"
	"log"
	"time"

	"admission-portal-api/config"
	"admission-portal-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrAdmissionNotFound = errors.New("admission not found")
)

// DashboardCacheKey holds the cached dashboard aggregates. Admission writes
// drop it so the next stats read recomputes.
const DashboardCacheKey = "dashboard:stats"

// StatusNotifier is what the workflow needs from the notification service.
type StatusNotifier interface {
	Dispatch(adm models.Admission)
	SendStatusEmail(adm models.Admission) DispatchResult
}

// AdmissionService owns admission records: creation, queries and the status
// workflow. Every status transition schedules a notification.
type AdmissionService struct {
	db       *gorm.DB
	notifier StatusNotifier
}

func NewAdmissionService(db *gorm.DB, notifier StatusNotifier) *AdmissionService {
	return &AdmissionService{db: db, notifier: notifier}
}

// Create persists a new admission. The identifier, initial status and
// application date are server-assigned regardless of the input, and an
// application-received notification is scheduled.
func (s *AdmissionService) Create(adm *models.Admission) error {
	adm.AdmissionID = uuid.NewString()
	adm.Status = models.StatusPending
	if adm.ApplicationDate.IsZero() {
		adm.ApplicationDate = time.Now()
	}

	if err := s.db.Create(adm).Error; err != nil {
		return err
	}

	s.notifier.Dispatch(*adm)
	invalidateDashboardCache()
	return nil
}

// Get loads one admission by id.
func (s *AdmissionService) Get(id string) (models.Admission, error) {
	var adm models.Admission
	err := s.db.Where("admission_id = ?", id).First(&adm).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Admission{}, ErrAdmissionNotFound
	}
	return adm, err
}

// ListAll returns the full filtered and sorted result set (unbounded mode,
// used for exports and legacy callers).
func (s *AdmissionService) ListAll(q ListQuery) ([]models.Admission, error) {
	admissions := []models.Admission{}
	err := q.Apply(s.db.Model(&models.Admission{})).
		Order(q.OrderClause()).
		Find(&admissions).Error
	return admissions, err
}

// ListPage returns one bounded page plus count metadata.
func (s *AdmissionService) ListPage(q ListQuery) ([]models.Admission, ListMeta, error) {
	filtered := q.Apply(s.db.Model(&models.Admission{}))

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return nil, ListMeta{}, err
	}

	admissions := []models.Admission{}
	err := q.Apply(s.db.Model(&models.Admission{})).
		Order(q.OrderClause()).
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&admissions).Error
	if err != nil {
		return nil, ListMeta{}, err
	}

	meta := ListMeta{
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: q.TotalPages(total),
	}
	return admissions, meta, nil
}

// UpdateStatus overwrites the admission's status and schedules a
// notification with the new value. There is no precondition on the current
// status: re-approving an approved record persists and notifies again.
func (s *AdmissionService) UpdateStatus(id, target string) (models.Admission, error) {
	if !models.ValidStatus(target) {
		return models.Admission{}, ErrInvalidStatus
	}

	adm, err := s.Get(id)
	if err != nil {
		return models.Admission{}, err
	}

	if err := s.db.Model(&adm).Update("status", target).Error; err != nil {
		return models.Admission{}, err
	}
	adm.Status = target

	s.notifier.Dispatch(adm)
	invalidateDashboardCache()
	return adm, nil
}

// Resend sends the email for the admission's current status synchronously,
// for operator-triggered retry.
func (s *AdmissionService) Resend(id string) (models.Admission, DispatchResult, error) {
	adm, err := s.Get(id)
	if err != nil {
		return models.Admission{}, DispatchResult{}, err
	}
	return adm, s.notifier.SendStatusEmail(adm), nil
}

// EmailLogs returns the dispatch audit trail, optionally scoped to one
// admission, newest first.
func (s *AdmissionService) EmailLogs(admissionID string) ([]models.EmailLog, error) {
	logs := []models.EmailLog{}
	query := s.db.Model(&models.EmailLog{})
	if admissionID != "" {
		query = query.Where("admission_id = ?", admissionID)
	}
	err := query.Order("created_at DESC").Find(&logs).Error
	return logs, err
}

func invalidateDashboardCache() {
	if config.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := config.Cache.Del(ctx, DashboardCacheKey).Err(); err != nil {
		log.Printf("failed to drop dashboard cache: %v", err)
	}
}
