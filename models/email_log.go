package models

import "time"

// EmailLog records one notification dispatch attempt, including skips and
// failures. The dispatcher writes a row per attempt; nothing updates rows
// after insert.
type EmailLog struct {
	EmailLogID  int       `gorm:"primaryKey;column:email_log_id" json:"emailLogId"`
	AdmissionID string    `gorm:"column:admission_id;type:char(36)" json:"admissionId"`
	Recipient   string    `gorm:"column:recipient" json:"recipient"`
	Status      string    `gorm:"column:status" json:"status"`
	Subject     string    `gorm:"column:subject" json:"subject"`
	Sent        bool      `gorm:"column:sent" json:"sent"`
	Skipped     bool      `gorm:"column:skipped" json:"skipped"`
	Error       string    `gorm:"column:error" json:"error,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}
