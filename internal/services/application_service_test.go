package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhub/jobhub-api/internal/dtos"
	"github.com/jobhub/jobhub-api/internal/models"
)

func TestApplyIncrementsCounter(t *testing.T) {
	db := testDB(t)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	job, err := jobs.CreateJob(jobRequest("Backend Engineer", "owner@b.com"))
	require.NoError(t, err)

	app, err := apps.Apply(&dtos.ApplicationRequest{
		Email:         "a@b.com",
		JobID:         job.ID,
		ApplicantName: "A",
		Resume:        "https://example.com/cv.pdf",
	})
	require.NoError(t, err)
	require.NotZero(t, app.ID)

	got, err := jobs.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Applicants)
}

func TestApplyTwiceConflicts(t *testing.T) {
	db := testDB(t)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	job, err := jobs.CreateJob(jobRequest("Backend Engineer", "owner@b.com"))
	require.NoError(t, err)

	req := &dtos.ApplicationRequest{Email: "a@b.com", JobID: job.ID}
	_, err = apps.Apply(req)
	require.NoError(t, err)

	_, err = apps.Apply(req)
	require.ErrorIs(t, err, ErrAlreadyApplied)

	// The counter and the applications table stay consistent: one row, one
	// increment.
	var count int64
	require.NoError(t, db.Model(&models.Application{}).
		Where("email = ? AND job_id = ?", "a@b.com", job.ID).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := jobs.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Applicants)
}

func TestApplyDifferentApplicants(t *testing.T) {
	db := testDB(t)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	job, err := jobs.CreateJob(jobRequest("Backend Engineer", "owner@b.com"))
	require.NoError(t, err)

	_, err = apps.Apply(&dtos.ApplicationRequest{Email: "a@b.com", JobID: job.ID})
	require.NoError(t, err)
	_, err = apps.Apply(&dtos.ApplicationRequest{Email: "c@d.com", JobID: job.ID})
	require.NoError(t, err)

	got, err := jobs.GetJob(job.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Applicants)

	// Same applicant may still apply to a different job.
	other, err := jobs.CreateJob(jobRequest("Another Role", "owner@b.com"))
	require.NoError(t, err)
	_, err = apps.Apply(&dtos.ApplicationRequest{Email: "a@b.com", JobID: other.ID})
	require.NoError(t, err)
}

func TestListByEmail(t *testing.T) {
	db := testDB(t)
	jobs := NewJobService(db)
	apps := NewApplicationService(db)

	job, err := jobs.CreateJob(jobRequest("Backend Engineer", "owner@b.com"))
	require.NoError(t, err)

	_, err = apps.Apply(&dtos.ApplicationRequest{Email: "a@b.com", JobID: job.ID})
	require.NoError(t, err)
	_, err = apps.Apply(&dtos.ApplicationRequest{Email: "c@d.com", JobID: job.ID})
	require.NoError(t, err)

	mine, err := apps.ListByEmail("a@b.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, job.ID, mine[0].JobID)
}

func TestListCustomers(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.Customer{Name: "Acme", Email: "hi@acme.com"}).Error)

	customers, err := NewCustomerService(db).ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Acme", customers[0].Name)
}
