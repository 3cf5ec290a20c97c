package controllers

import (
	"errors"

	"camp-portal/backend/services"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps service errors to HTTP responses. Unexpected errors are
// logged and hidden behind a generic message.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return utils.Unauthorized(c, "Требуется вход в систему")
	case errors.Is(err, services.ErrInvalidCredentials):
		return utils.Unauthorized(c, "Неверный email или пароль")
	case errors.Is(err, services.ErrUnknownCourse):
		return utils.NotFound(c, "Курс не найден")
	case errors.Is(err, services.ErrUnknownItem):
		return utils.NotFound(c, "Материал не найден")
	case errors.Is(err, services.ErrUnknownSection):
		return utils.NotFound(c, "Раздел гида не найден")
	case errors.Is(err, services.ErrItemLocked):
		return utils.Forbidden(c, "Сначала завершите предыдущий урок")
	case errors.Is(err, services.ErrWrongPassword):
		return utils.FieldError(c, "old_password", "Неверный текущий пароль")
	case errors.Is(err, services.ErrEmailTaken):
		return utils.Conflict(c, "Пользователь с таким email уже зарегистрирован")
	}

	log.Error("request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return utils.InternalServerError(c, "Что-то пошло не так, попробуйте еще раз")
}
