package controllers

import (
	"coursecraft/dto"
	"coursecraft/middleware"
	"coursecraft/services"

	"github.com/gofiber/fiber/v2"
)

// StepController is the request layer over the step service
type StepController struct {
	steps *services.StepService
}

func NewStepController(steps *services.StepService) *StepController {
	return &StepController{steps: steps}
}

func parseCourseID(c *fiber.Ctx) (uint, bool) {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return 0, false
	}
	return uint(courseID), true
}

// GetStepsByCourse lists a course's steps sorted by step number
func (ctrl *StepController) GetStepsByCourse(c *fiber.Ctx) error {
	courseID, ok := parseCourseID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	steps, err := ctrl.steps.GetStepsByCourse(courseID)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"count": len(steps),
		"steps": steps,
	})
}

// GetStep returns a single step
func (ctrl *StepController) GetStep(c *fiber.Ctx) error {
	stepID, err := c.ParamsInt("id")
	if err != nil || stepID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid step id!", nil)
	}

	step, err := ctrl.steps.GetStepByID(uint(stepID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{"step": step})
}

// CreateStep persists a step under an existing course
func (ctrl *StepController) CreateStep(c *fiber.Ctx) error {
	courseID, ok := parseCourseID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedStep").(*dto.CreateStepRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	step, err := ctrl.steps.CreateStep(courseID, reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Step created successfully", fiber.Map{"step": step})
}

// UpdateStep applies a partial patch to step fields
func (ctrl *StepController) UpdateStep(c *fiber.Ctx) error {
	stepID, err := c.ParamsInt("id")
	if err != nil || stepID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid step id!", nil)
	}

	reqData, ok := c.Locals("validatedStepUpdate").(*dto.UpdateStepRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	step, err := ctrl.steps.UpdateStep(uint(stepID), reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Step updated successfully", fiber.Map{"step": step})
}

// DeleteStep removes a step and pulls it from the parent course's list
func (ctrl *StepController) DeleteStep(c *fiber.Ctx) error {
	stepID, err := c.ParamsInt("id")
	if err != nil || stepID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid step id!", nil)
	}

	if err := ctrl.steps.DeleteStep(uint(stepID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Step deleted successfully", nil)
}

// ReorderSteps renumbers steps to match the submitted sequence
func (ctrl *StepController) ReorderSteps(c *fiber.Ctx) error {
	courseID, ok := parseCourseID(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedReorder").(*dto.ReorderStepsRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := ctrl.steps.ReorderSteps(courseID, reqData); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Steps reordered successfully", nil)
}
