package handlers

import (
	"net/http"

	"seatbill/internal/billing"
	"seatbill/internal/common"
	"seatbill/internal/services"

	"github.com/golang-sql/civil"
	"github.com/labstack/echo/v4"
)

// UserHandlers handles HTTP requests for billable users
type UserHandlers struct {
	userService services.UserService
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers(userService services.UserService) *UserHandlers {
	return &UserHandlers{userService: userService}
}

func (h *UserHandlers) Register(g *echo.Group) {
	g.GET("/users", h.ListUsers)
	g.POST("/users", h.CreateUser)
	g.GET("/users/:id", h.GetUser)
	g.PUT("/users/:id/deactivate", h.DeactivateUser)
}

// CreateUser handles POST /customers/:customer_id/users
// @Summary Activate a user
// @Tags users
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 201 {object} models.User
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/users [post]
func (h *UserHandlers) CreateUser(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	var req struct {
		Name          string  `json:"name"`
		ActivatedOn   string  `json:"activated_on"`
		DeactivatedOn *string `json:"deactivated_on"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	if err := common.ValidateRequiredString(req.Name, "name"); err != nil {
		return common.SendValidationError(c, "name", err.Error())
	}
	activatedOn, err := billing.ParseDate(req.ActivatedOn)
	if err != nil {
		return common.SendValidationError(c, "activated_on", err.Error())
	}
	var deactivatedOn *civil.Date
	if req.DeactivatedOn != nil && *req.DeactivatedOn != "" {
		d, err := billing.ParseDate(*req.DeactivatedOn)
		if err != nil {
			return common.SendValidationError(c, "deactivated_on", err.Error())
		}
		deactivatedOn = &d
	}

	user, err := h.userService.Activate(c.Request().Context(), customerID, services.ActivateUserRequest{
		Name:          req.Name,
		ActivatedOn:   activatedOn,
		DeactivatedOn: deactivatedOn,
	})
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(http.StatusCreated, user)
}

// ListUsers handles GET /customers/:customer_id/users
// @Summary List billable users
// @Tags users
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Success 200 {array} models.User
// @Security BearerAuth
// @Router /customers/{customer_id}/users [get]
func (h *UserHandlers) ListUsers(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}

	users, err := h.userService.List(c.Request().Context(), customerID)
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"users": users,
	})
}

// GetUser handles GET /customers/:customer_id/users/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/users/{id} [get]
func (h *UserHandlers) GetUser(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}
	userID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	user, err := h.userService.Get(c.Request().Context(), customerID, userID)
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(http.StatusOK, user)
}

// DeactivateUser handles PUT /customers/:customer_id/users/:id/deactivate
// @Summary Record the last billable day of a user
// @Tags users
// @Accept json
// @Produce json
// @Param customer_id path string true "Customer ID"
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} common.ErrorResponse
// @Security BearerAuth
// @Router /customers/{customer_id}/users/{id}/deactivate [put]
func (h *UserHandlers) DeactivateUser(c echo.Context) error {
	customerID, err := customerIDParam(c)
	if err != nil {
		return common.SendValidationError(c, "customer_id", err.Error())
	}
	userID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		DeactivatedOn string `json:"deactivated_on"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	on, err := billing.ParseDate(req.DeactivatedOn)
	if err != nil {
		return common.SendValidationError(c, "deactivated_on", err.Error())
	}

	user, err := h.userService.Deactivate(c.Request().Context(), customerID, userID, on)
	if err != nil {
		return respondError(c, err, "User")
	}
	return c.JSON(http.StatusOK, user)
}
