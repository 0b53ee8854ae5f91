package models

import (
	"time"
)

// Job is a posting on the board. Post date and deadline come from the client
// as opaque date strings and are stored as submitted.
type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"not null" json:"title"`
	Category    string `json:"category"`
	Salary      string `json:"salary"`
	Description string `gorm:"type:text" json:"description"`
	PostDate    string `json:"post_date"`
	Deadline    string `json:"deadline"`
	// Applicants tracks how many applications this posting has received.
	// Kept in sync with the applications table by ApplicationService.Apply.
	Applicants int    `gorm:"not null" json:"applicants"`
	Photo      string `json:"photo"`

	// Owner identity; /myJob filters on this.
	UserEmail string `gorm:"index;not null" json:"user_email"`
}

// Application records one user applying to one job. The composite unique
// index makes "apply twice" fail at the store even when two requests race
// past the duplicate check.
type Application struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Email         string `gorm:"uniqueIndex:idx_applications_email_job;not null" json:"email"`
	JobID         uint   `gorm:"uniqueIndex:idx_applications_email_job;not null" json:"job_id"`
	ApplicantName string `json:"applicant_name"`
	Resume        string `json:"resume"`
}

// Customer is a read-only reference record shown on the landing page.
type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}
