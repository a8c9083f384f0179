package handlers

import (
	"net/http"

	"seatbill/internal/common"
	"seatbill/internal/services"

	"github.com/labstack/echo/v4"
)

// SubscriptionHandlers handles HTTP requests for a customer's seat plan
type SubscriptionHandlers struct {
	subscriptionService services.SubscriptionService
}

// NewSubscriptionHandlers creates a new subscription handlers instance
func NewSubscriptionHandlers(subscriptionService services.SubscriptionService) *SubscriptionHandlers {
	return &SubscriptionHandlers{subscriptionService: subscriptionService}
}

type subscriptionRequest struct {
	MonthlyPriceInCents *int64 `json:"monthly_price_in_cents"`
}

func (h *SubscriptionHandlers) Register(g *echo.Group) {
	g.POST("/subscription", h.CreateSubscription)
	g.GET("/subscription", h.GetSubscription)
	g.PUT("/subscription", h.UpdateSubscription)
	g.DELETE("/subscription", h.CancelSubscription)
}

// bindPrice reads the price from the body. When ok is false the error response has been written.
func bindPrice(c echo.Context) (price int64, ok bool, err error) {
	var req subscriptionRequest
	if err := c.Bind(&req); err != nil {
		return 0, false, common.SendClientError(c, "Invalid request format")
	}
	if req.MonthlyPriceInCents == nil {
		return 0, false, common.SendValidationError(c, "monthly_price_in_cents", "monthly_price_in_cents is required")
	}
	return *req.MonthlyPriceInCents, true, nil
}

// CreateSubscription handles POST /customers/:customer_id/subscription
// @Summary Create the seat plan
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param request body subscriptionRequest true "Monthly price"
// @Success 201 {object} models.Subscription
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/subscription [post]
func (h *SubscriptionHandlers) CreateSubscription(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}
	price, ok, err := bindPrice(c)
	if !ok {
		return err
	}

	subscription, err := h.subscriptionService.Create(c.Request().Context(), customerID, price)
	if err != nil {
		return respondError(c, err, "Subscription")
	}
	return c.JSON(http.StatusCreated, subscription)
}

// GetSubscription handles GET /customers/:customer_id/subscription
// @Summary Get the seat plan
// @Tags subscriptions
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} models.Subscription
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/subscription [get]
func (h *SubscriptionHandlers) GetSubscription(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	subscription, err := h.subscriptionService.Get(c.Request().Context(), customerID)
	if err != nil {
		return respondError(c, err, "Subscription")
	}
	return c.JSON(http.StatusOK, subscription)
}

// UpdateSubscription handles PUT /customers/:customer_id/subscription
// @Summary Change the monthly price
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param request body subscriptionRequest true "New price"
// @Success 200 {object} models.Subscription
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/subscription [put]
func (h *SubscriptionHandlers) UpdateSubscription(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}
	price, ok, err := bindPrice(c)
	if !ok {
		return err
	}

	subscription, err := h.subscriptionService.UpdatePrice(c.Request().Context(), customerID, price)
	if err != nil {
		return respondError(c, err, "Subscription")
	}
	return c.JSON(http.StatusOK, subscription)
}

// CancelSubscription handles DELETE /customers/:customer_id/subscription
// @Summary Cancel the seat plan
// @Tags subscriptions
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 204
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/subscription [delete]
func (h *SubscriptionHandlers) CancelSubscription(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	if err := h.subscriptionService.Cancel(c.Request().Context(), customerID); err != nil {
		return respondError(c, err, "Subscription")
	}
	return c.NoContent(http.StatusNoContent)
}
