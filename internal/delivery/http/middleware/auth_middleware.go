package middleware

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	deliverycontext "nms/internal/delivery/context"
	"nms/internal/delivery/http/response"
	"nms/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the caller's ID and roles on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil || userID <= 0 {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		deliverycontext.SetIdentity(c, userID, claims.Roles)

		return next(c)
	}
}

// RequireAnyRole lets the request through when the caller holds at least one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAnyRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			callerRoles := deliverycontext.GetRoles(c)
			if !slices.ContainsFunc(roles, func(role string) bool {
				return slices.Contains(callerRoles, role)
			}) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require one of '"+strings.Join(roles, "', '")+"'")
			}

			return next(c)
		}
	}
}
