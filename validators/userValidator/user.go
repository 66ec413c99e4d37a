package userValidator

import (
	"regexp"
	"strings"
	"unicode"

	"coursecraft/dto"
	"coursecraft/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const passwordSpecials = "@$!%*?&"

func validateUsername(username string, errors map[string]string) {
	switch {
	case len(username) < 3:
		errors["username"] = "Username must be at least 3 characters"
	case len(username) > 30:
		errors["username"] = "Username cannot exceed 30 characters"
	case !usernamePattern.MatchString(username):
		errors["username"] = "Username can only contain letters, numbers and underscores"
	}
}

func validateEmail(email string, errors map[string]string) {
	switch {
	case len(email) < 5:
		errors["email"] = "Email is too short"
	case len(email) > 50:
		errors["email"] = "Email cannot exceed 50 characters"
	case validate.Var(email, "required,email") != nil:
		errors["email"] = "Invalid email format"
	}
}

func validatePassword(password string, field string, errors map[string]string) {
	if len(password) < 8 {
		errors[field] = "Password must be at least 8 characters"
		return
	}
	if len(password) > 100 {
		errors[field] = "Password cannot exceed 100 characters"
		return
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		errors[field] = "Password must contain at least one uppercase letter, one lowercase letter, one number and one special character"
	}
}

// Register validates account creation requests
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateUsername(strings.TrimSpace(reqData.Username), errors)
		validateEmail(strings.TrimSpace(reqData.Email), errors)
		validatePassword(reqData.Password, "password", errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		reqData.Username = strings.TrimSpace(reqData.Username)
		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validates authentication requests
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateEmail(strings.TrimSpace(reqData.Email), errors)
		if reqData.Password == "" {
			errors["password"] = "Password is required"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// UpdateProfile validates partial profile patches
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Username != nil {
			validateUsername(strings.TrimSpace(*reqData.Username), errors)
		}
		if reqData.Email != nil {
			validateEmail(strings.TrimSpace(*reqData.Email), errors)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

// ChangePassword validates the dedicated password-change flow
func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.ChangePasswordRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.CurrentPassword == "" {
			errors["currentPassword"] = "Current password is required"
		}
		validatePassword(reqData.NewPassword, "newPassword", errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}
