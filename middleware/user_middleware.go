package middleware

import (
	authutils "helpdesk-backend/lib/utils/auth-utils"
	"helpdesk-backend/models"

	"github.com/gofiber/fiber/v2"
)

func GetUserID(ctx *fiber.Ctx) string {
	return claimString(ctx, "sub")
}

func GetUserName(ctx *fiber.Ctx) string {
	return claimString(ctx, "name")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(claimString(ctx, "role"))
}

// GetActor пользователь, выполняющий запрос
func GetActor(ctx *fiber.Ctx) models.Actor {
	return models.Actor{
		ID:   GetUserID(ctx),
		Name: GetUserName(ctx),
		Role: GetUserRole(ctx),
	}
}

func claimString(ctx *fiber.Ctx, key string) string {
	claims := authutils.GetClaims(ctx)
	if value, exist := claims[key]; exist {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}
