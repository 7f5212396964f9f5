package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/example/lavash/internal/apperrors"
	"github.com/example/lavash/internal/authz"
	"github.com/example/lavash/internal/config"
	"github.com/example/lavash/internal/utils"
)

const principalContextKey = "currentPrincipal"

// Auth validates JWT tokens and loads the authenticated principal into context.
func Auth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := resolve(cfg, c)
		if err != nil {
			return err
		}
		c.Locals(principalContextKey, principal)
		return c.Next()
	}
}

// OptionalAuth loads the principal when a valid bearer token is present and
// continues anonymously otherwise. It never fails the request.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if principal, err := resolve(cfg, c); err == nil {
			c.Locals(principalContextKey, principal)
		}
		return c.Next()
	}
}

// RequireOperation gates a route on the central authorization policy. It must
// run after Auth.
func RequireOperation(op authz.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := GetPrincipal(c)
		if !ok {
			return apperrors.NewAuthentication("authentication required")
		}
		if !authz.Can(principal.Role, op) {
			return apperrors.NewAuthorization("role " + principal.Role + " is not permitted")
		}
		return c.Next()
	}
}

func resolve(cfg *config.Config, c *fiber.Ctx) (authz.Principal, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return authz.Principal{}, apperrors.NewAuthentication("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return authz.Principal{}, apperrors.NewAuthentication("invalid authorization header")
	}

	userID, role, err := utils.ParseToken(cfg.JWTSecret, parts[1])
	if err != nil {
		return authz.Principal{}, apperrors.NewAuthentication("invalid token")
	}

	return authz.Principal{UserID: userID, Role: role}, nil
}

// GetPrincipal extracts the authenticated principal from context.
func GetPrincipal(c *fiber.Ctx) (authz.Principal, bool) {
	value := c.Locals(principalContextKey)
	if value == nil {
		return authz.Principal{}, false
	}

	if principal, ok := value.(authz.Principal); ok {
		return principal, true
	}

	return authz.Principal{}, false
}
