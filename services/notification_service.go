package services

import (
	"bytes"
	"html/template"
	"log"

	"admission-portal-api/config"
	"admission-portal-api/models"

	"gorm.io/gorm"
)

// DispatchResult reports the outcome of one email dispatch. Failures are
// carried in the struct, never as a Go error: a broken mail transport must
// not fail the workflow that triggered the notification.
type DispatchResult struct {
	Sent    bool   `json:"sent"`
	Skipped bool   `json:"skipped"`
	Error   string `json:"error,omitempty"`
}

// NotificationService builds and sends status emails and records every
// attempt in the email log. The mailer is handed in at construction; nil
// means SMTP is not configured and every dispatch is a recorded skip.
type NotificationService struct {
	db     *gorm.DB
	mailer *config.Mailer
}

func NewNotificationService(db *gorm.DB, mailer *config.Mailer) *NotificationService {
	return &NotificationService{db: db, mailer: mailer}
}

var statusSubjects = map[string]string{
	models.StatusApproved: "Admission Application Approved",
	models.StatusRejected: "Admission Application Update",
	models.StatusPending:  "Admission Application Received",
}

var statusTitles = map[string]string{
	models.StatusApproved: "Congratulations!",
	models.StatusRejected: "Application Update",
	models.StatusPending:  "Application Received",
}

var statusMessages = map[string]string{
	models.StatusApproved: "We are pleased to inform you that your admission application has been approved. Our team will contact you with next steps soon.",
	models.StatusRejected: "We regret to inform you that your admission application could not be approved at this time. You may contact the admissions office for further information.",
	models.StatusPending:  "Your admission application has been received and is currently under review. We will notify you once a decision is made.",
}

var statusEmailTmpl = template.Must(template.New("statusEmail").Parse(`
<div style="font-family:Segoe UI,Arial,sans-serif;line-height:1.5;color:#333">
  <h2 style="color:#2a5298;margin-bottom:4px">{{.Title}}</h2>
  <p style="margin:0 0 12px">Dear {{.Name}},</p>
  <p style="margin:0 0 12px">{{.Message}}</p>
  <div style="margin:16px 0;padding:12px 16px;background:#f5f7fb;border-radius:8px;border:1px solid #e3e8f0">
    <p style="margin:6px 0"><strong>Application ID:</strong> {{.AdmissionID}}</p>
    <p style="margin:6px 0"><strong>Course:</strong> {{.Course}}</p>
    <p style="margin:6px 0"><strong>Status:</strong> {{.Status}}</p>
  </div>
  <p style="margin:0 0 12px">Regards,<br/>College Admissions Office</p>
</div>`))

type statusEmailData struct {
	Title       string
	Name        string
	Message     string
	AdmissionID string
	Course      string
	Status      string
}

// StatusSubject returns the subject line for a status email.
func StatusSubject(status string) string {
	if s, ok := statusSubjects[status]; ok {
		return s
	}
	return "Admission Application Update"
}

// RenderStatusEmail builds the HTML body for an admission's status email.
func RenderStatusEmail(adm models.Admission) (string, error) {
	title, ok := statusTitles[adm.Status]
	if !ok {
		title = statusTitles[models.StatusRejected]
	}
	message, ok := statusMessages[adm.Status]
	if !ok {
		message = statusMessages[models.StatusPending]
	}

	var buf bytes.Buffer
	err := statusEmailTmpl.Execute(&buf, statusEmailData{
		Title:       title,
		Name:        adm.FullName,
		Message:     message,
		AdmissionID: adm.AdmissionID,
		Course:      adm.AcademicCourse,
		Status:      adm.Status,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendStatusEmail sends one status email synchronously and records the
// attempt. It never returns an error; see DispatchResult.
func (n *NotificationService) SendStatusEmail(adm models.Admission) DispatchResult {
	subject := StatusSubject(adm.Status)

	var result DispatchResult
	switch {
	case n.mailer == nil:
		result = DispatchResult{Skipped: true, Error: "smtp not configured"}
	default:
		html, err := RenderStatusEmail(adm)
		if err == nil {
			err = n.mailer.Send(adm.Email, subject, html)
		}
		if err != nil {
			result = DispatchResult{Error: err.Error()}
		} else {
			result = DispatchResult{Sent: true}
		}
	}

	n.record(adm, subject, result)
	return result
}

// Dispatch sends the status email without blocking the caller. The outcome
// is logged and recorded only; the triggering request never waits on it.
func (n *NotificationService) Dispatch(adm models.Admission) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("notification dispatch panic for %s: %v", adm.AdmissionID, r)
			}
		}()

		result := n.SendStatusEmail(adm)
		switch {
		case result.Skipped:
			log.Printf("notification skipped for %s: %s", adm.AdmissionID, result.Error)
		case result.Error != "":
			log.Printf("notification failed for %s: %s", adm.AdmissionID, result.Error)
		default:
			log.Printf("notification sent for %s (%s)", adm.AdmissionID, adm.Status)
		}
	}()
}

func (n *NotificationService) record(adm models.Admission, subject string, result DispatchResult) {
	if n.db == nil {
		return
	}
	entry := models.EmailLog{
		AdmissionID: adm.AdmissionID,
		Recipient:   adm.Email,
		Status:      adm.Status,
		Subject:     subject,
		Sent:        result.Sent,
		Skipped:     result.Skipped,
		Error:       result.Error,
	}
	if err := n.db.Create(&entry).Error; err != nil {
		log.Printf("failed to record email log for %s: %v", adm.AdmissionID, err)
	}
}
