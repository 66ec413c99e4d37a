package userController

import (
	"coursecraft/config"
	"coursecraft/dto"
	"coursecraft/middleware"
	"coursecraft/services"
	"coursecraft/utils"

	"github.com/gofiber/fiber/v2"
)

// UserController is the request layer over the user service
type UserController struct {
	users *services.UserService
	cfg   *config.Config
}

func NewUserController(users *services.UserService, cfg *config.Config) *UserController {
	return &UserController{users: users, cfg: cfg}
}

// Register creates an account and returns a token plus the public user view
func (ctrl *UserController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*dto.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctrl.users.Register(reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	// Side effect only, the response never waits on it
	go utils.SendWelcomeEmail(ctrl.cfg, result.User.Email, result.User.Username)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Registration successful", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// Login authenticates and returns a fresh token
func (ctrl *UserController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*dto.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ctrl.users.Login(reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}

// GetProfile returns the authenticated user's record
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := ctrl.users.GetProfile(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{"user": user})
}

// UpdateProfile applies a partial patch to the authenticated user
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*dto.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ctrl.users.UpdateProfile(userID, reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", fiber.Map{"user": user})
}

// ChangePassword verifies the current password and stores a new hash
func (ctrl *UserController) ChangePassword(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*dto.ChangePasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.users.ChangePassword(userID, reqData); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully", nil)
}

// DeleteAccount removes the authenticated user's record
func (ctrl *UserController) DeleteAccount(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := ctrl.users.DeleteAccount(userID); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account deleted successfully", nil)
}

// RefreshToken issues a new token for the authenticated user
func (ctrl *UserController) RefreshToken(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	result, err := ctrl.users.RefreshToken(userID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"token": result.Token,
		"user":  result.User,
	})
}
