package handlers

import (
	"errors"
	"log"
	"strconv"

	"seatbill/internal/billing"
	"seatbill/internal/common"
	"seatbill/internal/repositories"
	"seatbill/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// respondError maps service errors onto the standard error responses.
func respondError(c echo.Context, err error, resource string) error {
	switch {
	case errors.Is(err, billing.ErrInvalidMonth):
		return common.SendValidationError(c, "month", err.Error())
	case errors.Is(err, services.ErrValidation):
		return common.SendValidationError(c, "request", err.Error())
	case errors.Is(err, services.ErrNoSubscription):
		return common.SendNotFoundError(c, "Subscription")
	case errors.Is(err, repositories.ErrNotFound):
		return common.SendNotFoundError(c, resource)
	case errors.Is(err, repositories.ErrAlreadyExists):
		return common.SendConflictError(c, resource)
	default:
		log.Printf("ERROR: %s %s: %v", c.Request().Method, c.Path(), err)
		return common.SendServerError(c, "Request could not be completed")
	}
}

func customerIDParam(c echo.Context) (uuid.UUID, error) {
	return common.ValidateUUID(c.Param("customer_id"), "customer_id")
}

func queryInt(c echo.Context, key string, defaultValue int) int {
	if valueStr := c.QueryParam(key); valueStr != "" {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
