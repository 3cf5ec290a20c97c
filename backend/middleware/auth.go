package middleware

import (
	"camp-portal/backend/config"
	"camp-portal/backend/session"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	localUserID = "user_id"
	localClaims = "token_claims"
)

// AuthMiddleware rejects requests without a valid, unrevoked token.
func AuthMiddleware(cfg *config.Config, denylist session.Denylist, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := authenticate(c, cfg, denylist, log)
		if err != nil {
			return utils.Unauthorized(c, "Требуется вход в систему")
		}
		remember(c, claims)
		return c.Next()
	}
}

// OptionalAuth identifies the user when a valid token is present and lets everyone through.
func OptionalAuth(cfg *config.Config, denylist session.Denylist, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Get(fiber.HeaderAuthorization) != "" {
			if claims, err := authenticate(c, cfg, denylist, log); err == nil {
				remember(c, claims)
			}
		}
		return c.Next()
	}
}

func authenticate(c *fiber.Ctx, cfg *config.Config, denylist session.Denylist, log *zap.Logger) (*utils.TokenClaims, error) {
	claims, err := utils.ParseToken(c.Get(fiber.HeaderAuthorization), cfg)
	if err != nil {
		return nil, err
	}

	revoked, err := denylist.IsRevoked(c.UserContext(), claims.TokenID)
	if err != nil {
		// Fail open when the denylist is unreachable.
		log.Warn("token denylist check failed", zap.Error(err))
		return claims, nil
	}
	if revoked {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
	}
	return claims, nil
}

func remember(c *fiber.Ctx, claims *utils.TokenClaims) {
	c.Locals(localUserID, claims.UserID)
	c.Locals(localClaims, claims)
}

// CurrentUserID returns the authenticated user's id or "".
func CurrentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

func CurrentClaims(c *fiber.Ctx) *utils.TokenClaims {
	claims, _ := c.Locals(localClaims).(*utils.TokenClaims)
	return claims
}
