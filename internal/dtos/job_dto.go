package dtos

// JobRequest is the payload for POST /jobs and PUT /jobs/:id. The PUT is a
// full replace, so every field here overwrites the stored record.
type JobRequest struct {
	Title       string `json:"title" binding:"required"`
	UserEmail   string `json:"user_email" binding:"required,email"`
	Description string `json:"description"`

	// Optional Fields
	Category   string `json:"category"`
	Salary     string `json:"salary"`
	PostDate   string `json:"post_date"`
	Deadline   string `json:"deadline"`
	Applicants int    `json:"applicants"`
	Photo      string `json:"photo"`
}
