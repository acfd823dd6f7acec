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
	"github.com/SscSPs/ct_order_jobs/internal/utils"
	"github.com/gin-gonic/gin"
)

const jobAggregateOrders = "orders_aggregate"

// orderJobHandler handles the order aggregation job.
type orderJobHandler struct {
	aggregationService portssvc.OrderAggregationSvc
	metrics            *metrics.JobMetrics
}

func newOrderJobHandler(svc portssvc.OrderAggregationSvc, m *metrics.JobMetrics) *orderJobHandler {
	return &orderJobHandler{aggregationService: svc, metrics: m}
}

// registerOrderJobRoutes registers the order job routes under rg.
func registerOrderJobRoutes(rg *gin.RouterGroup, svc portssvc.OrderAggregationSvc, m *metrics.JobMetrics) {
	h := newOrderJobHandler(svc, m)

	orders := rg.Group("/orders")
	{
		orders.POST("/aggregate", h.aggregateOrders)
	}
}

// aggregateOrders godoc
// @Summary Aggregate orders by customer
// @Description Fetches current exchange rates and one page of orders, then groups the orders per customer with amounts converted to US dollars.
// @Tags jobs
// @Produce  json
// @Success 200 {object} dto.OrderAggregationResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.MessageResponse "No completed orders found"
// @Failure 429 {object} dto.ErrorResponse "Too many requests"
// @Failure 500 {object} dto.MessageResponse "Internal Server Error"
// @Security BearerAuth
// @Router /jobs/orders/aggregate [post]
func (h *orderJobHandler) aggregateOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	start := time.Now()
	logger.Info("Order aggregation job started")

	aggregation, err := h.aggregationService.AggregateOrdersByCustomer(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNoResults) {
			logger.Info("No orders to aggregate", slog.String("reason", err.Error()))
			h.metrics.ObserveJob(jobAggregateOrders, metrics.OutcomeNoResults, time.Since(start))
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No completed orders found."})
			return
		}
		logger.Error("Order aggregation job failed", slog.String("error", err.Error()))
		h.metrics.ObserveJob(jobAggregateOrders, metrics.OutcomeFailure, time.Since(start))
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{Message: "Internal Server Error"})
		return
	}

	logger.Info("Order aggregation job finished",
		slog.Int("total", aggregation.Total),
		slog.Int("customer_groups", len(aggregation.Groups)),
		slog.String("total_usd", utils.FormatUSD(aggregation.TotalInDollars())),
	)
	h.metrics.ObserveJob(jobAggregateOrders, metrics.OutcomeSuccess, time.Since(start))
	c.JSON(http.StatusOK, dto.ToOrderAggregationResponse(aggregation))
}
