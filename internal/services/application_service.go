package services

import (
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/jobhub/jobhub-api/internal/dtos"
	"github.com/jobhub/jobhub-api/internal/models"
)

// ErrAlreadyApplied is returned when the caller has already applied to the
// same job with the same email.
var ErrAlreadyApplied = errors.New("already applied")

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{
		DB: db,
	}
}

// ListByEmail returns the applications submitted by the given email.
func (s *ApplicationService) ListByEmail(email string) ([]models.Application, error) {
	var apps []models.Application
	if err := s.DB.Where(&models.Application{Email: email}).Find(&apps).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}
	return apps, nil
}

// Apply submits an application and bumps the job's applicant counter. Both
// writes run in one transaction, so the counter can never drift from the
// applications table. The unique (email, job_id) index backs the duplicate
// check: when two identical applies race, exactly one insert wins and the
// loser surfaces as ErrAlreadyApplied.
func (s *ApplicationService) Apply(req *dtos.ApplicationRequest) (*models.Application, error) {
	app := &models.Application{
		Email:         req.Email,
		JobID:         req.JobID,
		ApplicantName: req.ApplicantName,
		Resume:        req.Resume,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyApplied
			}
			return errors.Wrap(err, "failed to insert application")
		}

		res := tx.Model(&models.Job{}).
			Where("id = ?", req.JobID).
			UpdateColumn("applicants", gorm.Expr("applicants + ?", 1))
		if res.Error != nil {
			return errors.Wrap(res.Error, "failed to update apply count")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}
