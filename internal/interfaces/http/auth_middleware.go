package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/livo/contratos-api/internal/application/dto"
	"github.com/livo/contratos-api/pkg/jwt"
)

// Locals keys para identidade do usuário no Fiber.
const (
	LocalUserID = "user_id"
	LocalEmail  = "email"
)

// AuthMiddleware valida o Bearer Token emitido pelo provedor de
// identidade e carrega UserID e Email em c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		userID, email, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalEmail, email)
		return c.Next()
	}
}

// GetUserID devolve o UserID do contexto (após o middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devolve o email do contexto (após o middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
