package course

import (
	"strings"

	"coursecraft/dto"
	"coursecraft/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func validateName(name string, errors map[string]string) {
	switch {
	case len(name) < 3:
		errors["name"] = "Course name must be at least 3 characters"
	case len(name) > 100:
		errors["name"] = "Course name cannot exceed 100 characters"
	}
}

func validateDescription(description string, errors map[string]string) {
	switch {
	case len(description) < 10:
		errors["description"] = "Description must be at least 10 characters"
	case len(description) > 1000:
		errors["description"] = "Description cannot exceed 1000 characters"
	}
}

func validateIconURL(iconURL string, errors map[string]string) {
	if iconURL != "" && validate.Var(iconURL, "url") != nil {
		errors["iconUrl"] = "Invalid URL format"
	}
}

// Create validates course creation requests
func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateName(strings.TrimSpace(reqData.Name), errors)
		validateDescription(strings.TrimSpace(reqData.Description), errors)
		if reqData.Language == "" {
			errors["language"] = "Programming language is required"
		}
		validateIconURL(reqData.IconURL, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// Update validates partial course patches with the same field rules
func Update() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil {
			validateName(strings.TrimSpace(*reqData.Name), errors)
		}
		if reqData.Description != nil {
			validateDescription(strings.TrimSpace(*reqData.Description), errors)
		}
		if reqData.Language != nil && *reqData.Language == "" {
			errors["language"] = "Programming language is required"
		}
		if reqData.IconURL != nil {
			validateIconURL(*reqData.IconURL, errors)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
