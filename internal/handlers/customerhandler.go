package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jobhub/jobhub-api/internal/services"
)

// CustomerHandler serves the read-only customer list.
type CustomerHandler struct {
	Customers *services.CustomerService
	Logger    *zap.SugaredLogger
}

func NewCustomerHandler(customers *services.CustomerService, logger *zap.SugaredLogger) *CustomerHandler {
	return &CustomerHandler{
		Customers: customers,
		Logger:    logger,
	}
}

// List is the GET /customer endpoint.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.Customers.ListCustomers()
	if err != nil {
		h.Logger.Errorw("failed to list customers", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}
