package controllers

import (
	"strings"

	"camp-portal/backend/middleware"
	"camp-portal/backend/services"
	"camp-portal/backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthController struct {
	Auth *services.AuthService
	Log  *zap.Logger
}

func NewAuthController(auth *services.AuthService, log *zap.Logger) *AuthController {
	return &AuthController{Auth: auth, Log: log}
}

type RegisterRequest struct {
	FullName        string `json:"full_name" validate:"required,min=2,max=50"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,has_letter,has_digit"`
	ConfirmPassword string `json:"confirm_password" validate:"eqfield=Password"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates an account with a profile and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterRequest true "Registration data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	result, err := ac.Auth.Register(c.UserContext(), input.FullName, input.Email, input.Password)
	if err != nil {
		return respondError(c, ac.Log, err)
	}

	return utils.Created(c, result)
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param input body LoginRequest true "Login credentials"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return utils.ValidationError(c, errs)
	}

	result, err := ac.Auth.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return respondError(c, ac.Log, err)
	}

	return utils.Success(c, fiber.StatusOK, result)
}

// Logout revokes the presented token.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	claims := middleware.CurrentClaims(c)
	if claims == nil {
		return utils.Unauthorized(c, "Требуется вход в систему")
	}

	if err := ac.Auth.Logout(c.UserContext(), claims.TokenID, claims.ExpiresAt); err != nil {
		return respondError(c, ac.Log, err)
	}
	return utils.NoContent(c)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	account, err := ac.Auth.Me(c.UserContext(), middleware.CurrentUserID(c))
	if err != nil {
		return respondError(c, ac.Log, err)
	}
	return utils.Success(c, fiber.StatusOK, account)
}
