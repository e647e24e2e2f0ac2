package models

import "time"

// Admission statuses. These are the only values the workflow accepts.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Genders accepted on submission.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"
)

// ValidStatus reports whether s is one of the three admission statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// ValidGender reports whether g is one of the accepted gender values.
func ValidGender(g string) bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Admission represents a single admission application. Applicant, academic
// and guardian fields are set once at submission; only Status changes
// afterwards.
type Admission struct {
	AdmissionID string `gorm:"primaryKey;column:admission_id;type:char(36)" json:"admissionId"`

	// Applicant
	FullName    string    `gorm:"column:full_name" json:"fullName"`
	Email       string    `gorm:"column:email" json:"email"`
	Phone       string    `gorm:"column:phone" json:"phone"`
	DateOfBirth time.Time `gorm:"column:date_of_birth" json:"dateOfBirth"`
	Gender      string    `gorm:"column:gender" json:"gender"`
	Address     string    `gorm:"column:address" json:"address"`
	City        string    `gorm:"column:city" json:"city"`
	State       string    `gorm:"column:state" json:"state"`
	Pincode     string    `gorm:"column:pincode" json:"pincode"`

	// Academic
	AcademicCourse        string  `gorm:"column:academic_course" json:"academicCourse"`
	PreviousQualification string  `gorm:"column:previous_qualification" json:"previousQualification"`
	Percentage            float64 `gorm:"column:percentage" json:"percentage"`

	// Guardian
	FatherName    string `gorm:"column:father_name" json:"fatherName"`
	MotherName    string `gorm:"column:mother_name" json:"motherName"`
	GuardianPhone string `gorm:"column:guardian_phone" json:"guardianPhone"`

	// Workflow
	Status          string    `gorm:"column:status;default:Pending" json:"status"`
	ApplicationDate time.Time `gorm:"column:application_date" json:"applicationDate"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

func (Admission) TableName() string {
	return "admissions"
}
