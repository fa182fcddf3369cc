package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	pasetotoken "github.com/govently/govently_backend/pkg/paseto"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func userIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	claims, ok := c.Locals(pasetotoken.CtxKeyClaims).(*pasetotoken.Claims)
	if !ok || claims == nil {
		return uuid.UUID{}, false
	}
	return claims.UserID, claims.UserID != uuid.Nil
}
