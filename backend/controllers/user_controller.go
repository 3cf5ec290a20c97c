package controllers

import (
	"strings"

	"camp-portal/backend/middleware"
	"camp-portal/backend/services"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type UserController struct {
	Auth *services.AuthService
	Log  *zap.Logger
}

func NewUserController(auth *services.AuthService, log *zap.Logger) *UserController {
	return &UserController{Auth: auth, Log: log}
}

type UpdateUserRequest struct {
	FullName    string `json:"full_name" validate:"omitempty,min=2,max=50" example:"Анна Смирнова"`
	OldPassword string `json:"old_password" validate:"required_with=NewPassword" example:"oldPassword1"`
	NewPassword string `json:"new_password" validate:"omitempty,min=6,has_letter,has_digit" example:"newPassword1"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's account and display name
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	account, err := uc.Auth.Me(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, uc.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, account)
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Changes the display name and, when new_password is set, the password
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateUserRequest true "Profile update data"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse "validation failed or old_password does not match"
// @Security ApiKeyAuth
// @Router /user/profile [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.FullName = strings.TrimSpace(input.FullName)
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	account, err := uc.Auth.UpdateProfile(c.UserContext(), userID, services.ProfileUpdate{
		FullName:    input.FullName,
		OldPassword: input.OldPassword,
		NewPassword: input.NewPassword,
	})
	if err != nil {
		return respondError(c, uc.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, account)
}
