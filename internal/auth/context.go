package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// FromContext extracts the identity claims from a token already verified by
// the JWT middleware.
func FromContext(c *fiber.Ctx) (Claims, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Claims{}, errors.New("no token in context")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMissingClaims
	}
	return claimsFromMap(mapClaims)
}
