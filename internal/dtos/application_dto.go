package dtos

// ApplicationRequest is the payload for POST /applied.
type ApplicationRequest struct {
	Email         string `json:"email" binding:"required,email"`
	JobID         uint   `json:"job_id" binding:"required"`
	ApplicantName string `json:"applicant_name"`
	Resume        string `json:"resume"`
}
