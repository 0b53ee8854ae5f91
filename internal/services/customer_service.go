package services

import (
	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	"github.com/jobhub/jobhub-api/internal/models"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{
		DB: db,
	}
}

// ListCustomers returns the full customer reference list. Customers have no
// write path; the table is seeded out of band.
func (s *CustomerService) ListCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.DB.Find(&customers).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}
	return customers, nil
}
