package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/govently/govently_backend/internal/repo"
	entuser "github.com/govently/govently_backend/internal/repo/user"
	pasetotoken "github.com/govently/govently_backend/pkg/paseto"
)

// RequireRole restricts a route to users whose stored role is one of
// the given values. Must run after AuthRequired.
func RequireRole(db *repo.Client, roles ...entuser.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := c.Locals(pasetotoken.CtxKeyClaims).(*pasetotoken.Claims)
		if !ok || claims == nil {
			return fiber.ErrUnauthorized
		}

		u, err := db.User.Query().
			Where(entuser.ID(claims.UserID)).
			Only(c.Context())
		if err != nil {
			return fiber.ErrUnauthorized
		}

		for _, r := range roles {
			if u.Role == r {
				return c.Next()
			}
		}
		return fiber.ErrForbidden
	}
}
