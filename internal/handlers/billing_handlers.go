package handlers

import (
	"net/http"

	"seatbill/internal/common"
	"seatbill/internal/services"

	"github.com/labstack/echo/v4"
)

// BillingHandlers serves charges, statements and invoices
type BillingHandlers struct {
	billingService services.BillingService
}

// NewBillingHandlers creates a new billing handlers instance
func NewBillingHandlers(billingService services.BillingService) *BillingHandlers {
	return &BillingHandlers{billingService: billingService}
}

// ChargeResponse is the body of GET /customers/:customer_id/charges
type ChargeResponse struct {
	CustomerID  string `json:"customer_id"`
	Month       string `json:"month"`
	AmountCents int64  `json:"amount_cents"`
}

func (h *BillingHandlers) Register(g *echo.Group) {
	g.GET("/charges", h.GetCharge)
	g.GET("/statements", h.GetStatement)
	g.GET("/invoices", h.ListInvoices)
	g.POST("/invoices", h.IssueInvoice)
	g.PUT("/invoices/:month/status", h.UpdateInvoiceStatus)
	g.GET("/invoices/:month/statement", h.GetStatementLink)
}

// GetCharge handles GET /customers/:customer_id/charges?month=YYYY-MM
// @Summary Monthly charge for a customer
// @Tags billing
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param month query string true "Month as YYYY-MM"
// @Success 200 {object} ChargeResponse
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/charges [get]
func (h *BillingHandlers) GetCharge(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	month := c.QueryParam("month")
	cents, err := h.billingService.MonthlyCharge(c.Request().Context(), customerID, month)
	if err != nil {
		return respondError(c, err, "Charge")
	}

	return c.JSON(http.StatusOK, ChargeResponse{
		CustomerID:  customerID.String(),
		Month:       month,
		AmountCents: cents,
	})
}

// GetStatement handles GET /customers/:customer_id/statements?month=YYYY-MM
// @Summary Per-user breakdown of a monthly charge
// @Tags billing
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param month query string true "Month as YYYY-MM"
// @Success 200 {object} billing.Statement
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/statements [get]
func (h *BillingHandlers) GetStatement(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	statement, err := h.billingService.Statement(c.Request().Context(), customerID, c.QueryParam("month"))
	if err != nil {
		return respondError(c, err, "Statement")
	}
	return c.JSON(http.StatusOK, statement)
}

// IssueInvoice handles POST /customers/:customer_id/invoices
// @Summary Issue the invoice for a month
// @Tags billing
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/invoices [post]
func (h *BillingHandlers) IssueInvoice(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	var req struct {
		Month string `json:"month"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	invoice, err := h.billingService.IssueInvoice(c.Request().Context(), customerID, req.Month)
	if err != nil {
		return respondError(c, err, "Invoice")
	}
	return c.JSON(http.StatusCreated, invoice)
}

// ListInvoices handles GET /customers/:customer_id/invoices
// @Summary List invoices, newest month first
// @Tags billing
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Invoice
// @Security BearerAuth
// @Router /customers/{customer_id}/invoices [get]
func (h *BillingHandlers) ListInvoices(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	limit := queryInt(c, "limit", 12)
	offset := queryInt(c, "offset", 0)

	invoices, err := h.billingService.ListInvoices(c.Request().Context(), customerID, limit, offset)
	if err != nil {
		return respondError(c, err, "Invoice")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"invoices": invoices,
		"limit":    limit,
		"offset":   offset,
	})
}

// UpdateInvoiceStatus handles PUT /customers/:customer_id/invoices/:month/status
// @Summary Update an invoice status
// @Tags billing
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param month path string true "Month as YYYY-MM"
// @Success 204
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/invoices/{month}/status [put]
func (h *BillingHandlers) UpdateInvoiceStatus(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := h.billingService.MarkInvoice(c.Request().Context(), customerID, c.Param("month"), req.Status); err != nil {
		return respondError(c, err, "Invoice")
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Invoice status updated successfully",
	})
}

// GetStatementLink handles GET /customers/:customer_id/invoices/:month/statement
// @Summary Short-lived download link for an archived statement
// @Tags billing
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param month path string true "Month as YYYY-MM"
// @Success 200 {object} map[string]string
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/invoices/{month}/statement [get]
func (h *BillingHandlers) GetStatementLink(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	url, err := h.billingService.StatementURL(c.Request().Context(), customerID, c.Param("month"))
	if err != nil {
		return respondError(c, err, "Statement")
	}
	return c.JSON(http.StatusOK, map[string]string{
		"url": url,
	})
}
