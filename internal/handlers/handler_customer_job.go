package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/ct_order_jobs/internal/apperrors"
	portssvc "github.com/SscSPs/ct_order_jobs/internal/core/ports/services"
	"github.com/SscSPs/ct_order_jobs/internal/dto"
	"github.com/SscSPs/ct_order_jobs/internal/metrics"
	"github.com/SscSPs/ct_order_jobs/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	jobListCustomers         = "customers_list"
	jobUpdateCustomerSegment = "customers_segment"
)

// customerJobHandler handles the customer jobs.
type customerJobHandler struct {
	customerService portssvc.CustomerSvcFacade
	metrics         *metrics.JobMetrics
}

func newCustomerJobHandler(svc portssvc.CustomerSvcFacade, m *metrics.JobMetrics) *customerJobHandler {
	return &customerJobHandler{customerService: svc, metrics: m}
}

// registerCustomerJobRoutes registers the customer job routes under rg.
func registerCustomerJobRoutes(rg *gin.RouterGroup, svc portssvc.CustomerSvcFacade, m *metrics.JobMetrics) {
	h := newCustomerJobHandler(svc, m)

	customers := rg.Group("/customers")
	{
		customers.POST("", h.listCustomers)
		customers.POST("/segment", h.updateCustomerSegment)
	}
}

// listCustomers godoc
// @Summary List customers
// @Description Returns one page of customers sorted by last modification, as returned by the platform.
// @Tags jobs
// @Produce  json
// @Success 200 {object} domain.CustomerPage
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.MessageResponse "Internal Server Error"
// @Security BearerAuth
// @Router /jobs/customers [post]
func (h *customerJobHandler) listCustomers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start := time.Now()

	page, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		logger.Error("Customer list job failed", slog.String("error", err.Error()))
		h.metrics.ObserveJob(jobListCustomers, metrics.OutcomeFailure, time.Since(start))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal Server Error"})
		return
	}

	logger.Info("Customers listed", slog.Int("total", page.Total), slog.Int("count", page.Count))
	h.metrics.ObserveJob(jobListCustomers, metrics.OutcomeSuccess, time.Since(start))
	c.JSON(http.StatusOK, page)
}

// updateCustomerSegment godoc
// @Summary Update customer segment
// @Description Sets the configured segment custom field on the configured customer, using the customer's current version.
// @Tags jobs
// @Produce  json
// @Success 200 {object} domain.Customer
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.ErrorResponse "Failed to update customer"
// @Security BearerAuth
// @Router /jobs/customers/segment [post]
func (h *customerJobHandler) updateCustomerSegment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start := time.Now()

	customer, err := h.customerService.UpdateCustomerSegment(c.Request.Context())
	if err != nil {
		logger.Error("Customer segment job failed", slog.String("error", err.Error()))
		h.metrics.ObserveJob(jobUpdateCustomerSegment, metrics.OutcomeFailure, time.Since(start))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to update customer: " + segmentFailureMessage(err)})
		return
	}

	logger.Info("Customer segment updated", slog.String("customer_id", customer.ID), slog.Int64("version", customer.Version))
	h.metrics.ObserveJob(jobUpdateCustomerSegment, metrics.OutcomeSuccess, time.Since(start))
	c.JSON(http.StatusOK, customer)
}

// segmentFailureMessage is the caller-facing cause of a failed segment update.
func segmentFailureMessage(err error) string {
	if errors.Is(err, apperrors.ErrMissingVersion) {
		return "Failed to retrieve customer version"
	}
	return apperrors.UpstreamMessage(err)
}
