package course

import (
	"fmt"
	"strings"

	"coursecraft/dto"
	"coursecraft/middleware"
	courseModels "coursecraft/models/course"

	"github.com/gofiber/fiber/v2"
)

func validateStepNumber(stepNumber int, errors map[string]string) {
	switch {
	case stepNumber < 1:
		errors["stepNumber"] = "Step number must be at least 1"
	case stepNumber > 1000:
		errors["stepNumber"] = "Step number cannot exceed 1000"
	}
}

func validateTitle(title string, errors map[string]string) {
	switch {
	case len(title) < 3:
		errors["title"] = "Title must be at least 3 characters"
	case len(title) > 200:
		errors["title"] = "Title cannot exceed 200 characters"
	}
}

func validateContent(content string, errors map[string]string) {
	switch {
	case len(content) < 10:
		errors["content"] = "Content must be at least 10 characters"
	case len(content) > 10000:
		errors["content"] = "Content cannot exceed 10000 characters"
	}
}

// Nested failures use dotted field paths, e.g. images.0.url
func validateImages(images []courseModels.Image, errors map[string]string) {
	for i, image := range images {
		if validate.Var(image.URL, "required,url") != nil {
			errors[fmt.Sprintf("images.%d.url", i)] = "Invalid image URL"
		}
	}
}

func validateCodeSnippets(snippets []courseModels.CodeSnippet, errors map[string]string) {
	for i, snippet := range snippets {
		if snippet.Code == "" {
			errors[fmt.Sprintf("codeSnippets.%d.code", i)] = "Code snippet cannot be empty"
		}
	}
}

func validateActivities(activities []courseModels.Activity, errors map[string]string) {
	for i, activity := range activities {
		if activity.Type == "" {
			errors[fmt.Sprintf("activities.%d.type", i)] = "Activity type is required"
		}
		if activity.Question == "" {
			errors[fmt.Sprintf("activities.%d.question", i)] = "Question is required"
		}
		if activity.CorrectAnswer == "" {
			errors[fmt.Sprintf("activities.%d.correctAnswer", i)] = "Correct answer is required"
		}
	}
}

// CreateStep validates step creation requests
func CreateStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.CreateStepRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		validateStepNumber(reqData.StepNumber, errors)
		validateTitle(strings.TrimSpace(reqData.Title), errors)
		validateContent(reqData.Content, errors)
		validateImages(reqData.Images, errors)
		validateCodeSnippets(reqData.CodeSnippets, errors)
		validateActivities(reqData.Activities, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStep", reqData)
		return c.Next()
	}
}

// UpdateStep validates partial step patches with the same field rules
func UpdateStep() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.UpdateStepRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StepNumber != nil {
			validateStepNumber(*reqData.StepNumber, errors)
		}
		if reqData.Title != nil {
			validateTitle(strings.TrimSpace(*reqData.Title), errors)
		}
		if reqData.Content != nil {
			validateContent(*reqData.Content, errors)
		}
		if reqData.Images != nil {
			validateImages(*reqData.Images, errors)
		}
		if reqData.CodeSnippets != nil {
			validateCodeSnippets(*reqData.CodeSnippets, errors)
		}
		if reqData.Activities != nil {
			validateActivities(*reqData.Activities, errors)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStepUpdate", reqData)
		return c.Next()
	}
}

// ReorderSteps only checks the sequence is present. Which ids it contains is
// deliberately left unchecked; they are applied positionally as given.
func ReorderSteps() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(dto.ReorderStepsRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.StepOrder == nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"stepOrder": "Step order is required",
			})
		}

		c.Locals("validatedReorder", reqData)
		return c.Next()
	}
}
