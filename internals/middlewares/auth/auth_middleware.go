package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"donavida_backend/internals/configs"
)

// AuthRequired: exige un JWT emitido por /api/auth/google. Deja user_id y
// user_name en Locals.
func AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		claims, err := parseAppToken(tokenString)
		if err != nil {
			log.Println("[ERROR] token inválido:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Sesión inválida o expirada")
		}
		storeClaimsToLocals(c, claims)
		return c.Next()
	}
}

// AuthOptional: igual que AuthRequired pero deja pasar invitados.
func AuthOptional() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}
		if claims, err := parseAppToken(tokenString); err == nil {
			storeClaimsToLocals(c, claims)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := c.Get(fiber.HeaderAuthorization)
	if h != "" {
		parts := strings.SplitN(h, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && parts[1] != "" {
			return parts[1], nil
		}
		return "", errors.New("Authorization header malformado")
	}
	if cookie := c.Cookies("access_token"); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("falta el token de autorización")
}

func parseAppToken(tokenString string) (jwt.MapClaims, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return nil, errors.New("JWT_SECRET no configurado")
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().After(time.Unix(int64(exp), 0).Add(30 * time.Second)) {
			return nil, errors.New("token expirado")
		}
	}
	return claims, nil
}

func storeClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if sub, ok := claims["sub"].(string); ok {
		c.Locals("user_id", sub)
	}
	if name, ok := claims["name"].(string); ok {
		c.Locals("user_name", name)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("user_email", email)
	}
}
