package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"seatbill/internal/common"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

const RoleAdmin = "admin"

// JWTCustomClaims are the claims carried by API tokens.
type JWTCustomClaims struct {
	CustomerID string `json:"customer_id"`
	Role       string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// AuthConfig selects how token signatures are verified.
type AuthConfig struct {
	Secret  string
	JWKSURL string
}

// NewJWTMiddleware builds bearer authentication. With a JWKS URL the signing keys are fetched
// and refreshed from it; otherwise tokens are checked against the shared secret.
// The returned close function stops background JWKS refreshes.
func NewJWTMiddleware(cfg AuthConfig) (echo.MiddlewareFunc, func(), error) {
	config := echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(JWTCustomClaims)
		},
		SuccessHandler: func(c echo.Context) {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return
			}
			claims, ok := token.Claims.(*JWTCustomClaims)
			if !ok {
				return
			}
			customerID, err := uuid.Parse(claims.CustomerID)
			if err != nil {
				return
			}
			ctx := context.WithValue(c.Request().Context(), common.CustomerIDKey, customerID)
			ctx = context.WithValue(ctx, common.RoleKey, claims.Role)
			c.SetRequest(c.Request().WithContext(ctx))
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
		},
	}

	closeFn := func() {}
	switch {
	case cfg.JWKSURL != "":
		jwks, err := keyfunc.Get(cfg.JWKSURL, keyfunc.Options{
			RefreshInterval:   time.Hour,
			RefreshUnknownKID: true,
			RefreshErrorHandler: func(err error) {
				log.Printf("WARN: JWKS refresh failed: %v", err)
			},
		})
		if err != nil {
			return nil, nil, fmt.Errorf("load JWKS: %w", err)
		}
		config.KeyFunc = jwks.Keyfunc
		closeFn = jwks.EndBackground
	case cfg.Secret != "":
		config.SigningKey = []byte(cfg.Secret)
	default:
		return nil, nil, fmt.Errorf("either a JWT secret or a JWKS URL is required")
	}

	return echojwt.WithConfig(config), closeFn, nil
}

// CustomerScope rejects requests for a customer other than the token's, unless the caller is an admin.
func CustomerScope(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			if common.GetRoleFromContext(ctx) == RoleAdmin {
				return next(c)
			}

			tokenCustomer, ok := common.GetCustomerIDFromContext(ctx)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Customer not found in token")
			}
			requested, err := uuid.Parse(c.Param(param))
			if err != nil || requested != tokenCustomer {
				return common.SendForbiddenError(c)
			}
			return next(c)
		}
	}
}

// GenerateToken signs an HMAC token for a customer. Used by tooling and tests.
func GenerateToken(secret string, customerID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &JWTCustomClaims{
		CustomerID: customerID.String(),
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   customerID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
