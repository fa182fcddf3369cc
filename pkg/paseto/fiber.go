package pasetotoken

import (
	"github.com/gofiber/fiber/v3"

	"github.com/govently/govently_backend/config"
)

// CtxKeyClaims is the Fiber locals key under which the auth middleware
// stores verified *Claims.
const CtxKeyClaims = "auth.claims"

// ClaimsFromFiber retrieves verified claims placed in locals by the
// auth middleware.
func ClaimsFromFiber(c fiber.Ctx) (*Claims, bool) {
	v := c.Locals(CtxKeyClaims)
	if v == nil {
		return nil, false
	}
	cl, ok := v.(*Claims)
	return cl, ok
}

// NewPasetoManager creates a new PASETO manager from config.
// Returns an error if the configuration is invalid.
func NewPasetoManager(cfg *config.Config) (*Manager, error) {
	p := cfg.Authentication.Paseto

	keys, err := LoadKeys(KeyStrings{
		Mode:         Mode(p.Mode),
		SymmetricHex: p.LocalKeyHex,
		SecretHex:    p.SecretKeyHex,
		PublicHex:    p.PublicKeyHex,
	})
	if err != nil {
		return nil, err
	}

	mgr, err := New(Config{
		Mode:     Mode(p.Mode),
		Issuer:   p.Issuer,
		Audience: p.Audience,
		Implicit: nil,
	}, keys)
	if err != nil {
		return nil, err
	}

	return mgr, nil
}
