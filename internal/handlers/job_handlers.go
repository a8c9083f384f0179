package handlers

import (
	"net/http"
	"time"

	"seatbill/internal/billing"
	"seatbill/internal/common"
	"seatbill/internal/jobs"

	"github.com/labstack/echo/v4"
)

// JobHandlers exposes background jobs to operators
type JobHandlers struct {
	invoicer jobs.Invoicer
	now      func() time.Time
}

func NewJobHandlers(invoicer jobs.Invoicer) *JobHandlers {
	return &JobHandlers{invoicer: invoicer, now: time.Now}
}

func (h *JobHandlers) Register(g *echo.Group) {
	g.POST("/invoice-runs", h.TriggerInvoiceRun)
}

// TriggerInvoiceRun handles POST /admin/invoice-runs. Without a month the previous month is invoiced.
// @Summary Invoice every customer for a month
// @Tags jobs
// @Accept json
// @Produce json
// @Success 200 {object} services.InvoiceRunResult
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /admin/invoice-runs [post]
func (h *JobHandlers) TriggerInvoiceRun(c echo.Context) error {
	var req struct {
		Month string `json:"month"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	month := billing.MonthOf(billing.Today(h.now())).Previous()
	if req.Month != "" {
		m, err := billing.ParseMonth(req.Month)
		if err != nil {
			return common.SendValidationError(c, "month", err.Error())
		}
		month = m
	}

	result, err := h.invoicer.InvoiceAll(c.Request().Context(), month)
	if err != nil {
		return respondError(c, err, "Invoice run")
	}
	return c.JSON(http.StatusOK, result)
}
