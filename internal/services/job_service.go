package services

import (
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jobhub/jobhub-api/internal/dtos"
	"github.com/jobhub/jobhub-api/internal/models"
)

// ErrJobNotFound is returned when a lookup by id matches no posting.
var ErrJobNotFound = errors.New("job not found")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{
		DB: db,
	}
}

// ListJobs returns every posting on the board.
func (s *JobService) ListJobs() ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Find(&jobs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}
	return jobs, nil
}

// ListJobsByOwner returns the postings created by the given email.
func (s *JobService) ListJobsByOwner(email string) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.Where(&models.Job{UserEmail: email}).Find(&jobs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list jobs by owner")
	}
	return jobs, nil
}

// GetJob fetches one posting by id.
func (s *JobService) GetJob(id uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch job")
	}
	return &job, nil
}

// CreateJob inserts a new posting and returns it with the store-assigned id.
func (s *JobService) CreateJob(req *dtos.JobRequest) (*models.Job, error) {
	job := jobFromRequest(req)
	if err := s.DB.Create(job).Error; err != nil {
		return nil, errors.Wrap(err, "failed to create job")
	}
	return job, nil
}

// UpsertJob replaces the posting at id with the submitted fields, creating
// the record when the id did not previously exist.
func (s *JobService) UpsertJob(id uint, req *dtos.JobRequest) (*models.Job, error) {
	job := jobFromRequest(req)
	job.ID = id
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(job).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to upsert job")
	}
	return job, nil
}

// DeleteJob removes the posting at id and reports how many rows went away.
// Deleting an absent id is not an error; the count is just zero.
func (s *JobService) DeleteJob(id uint) (int64, error) {
	res := s.DB.Delete(&models.Job{}, id)
	if res.Error != nil {
		return 0, errors.Wrap(res.Error, "failed to delete job")
	}
	return res.RowsAffected, nil
}

func jobFromRequest(req *dtos.JobRequest) *models.Job {
	return &models.Job{
		Title:       req.Title,
		Category:    req.Category,
		Salary:      req.Salary,
		Description: req.Description,
		PostDate:    req.PostDate,
		Deadline:    req.Deadline,
		Applicants:  req.Applicants,
		Photo:       req.Photo,
		UserEmail:   req.UserEmail,
	}
}
