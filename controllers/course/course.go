package controllers

import (
	"coursecraft/dto"
	"coursecraft/middleware"
	"coursecraft/services"

	"github.com/gofiber/fiber/v2"
)

// CourseController is the request layer over the course service
type CourseController struct {
	courses *services.CourseService
}

func NewCourseController(courses *services.CourseService) *CourseController {
	return &CourseController{courses: courses}
}

// GetAllCourses lists courses newest-first, optionally filtered by language
// or creation period (today, week, month).
func (ctrl *CourseController) GetAllCourses(c *fiber.Ctx) error {
	filter := new(dto.CourseFilter)
	if err := c.QueryParser(filter); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	courses, err := ctrl.courses.GetAllCourses(filter)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"count":   len(courses),
		"courses": courses,
	})
}

// SearchCourses matches a term against name, description and language
func (ctrl *CourseController) SearchCourses(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Search term is required!", nil)
	}

	courses, err := ctrl.courses.SearchCourses(term)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{
		"count":   len(courses),
		"courses": courses,
	})
}

// GetCourse returns a single course with its steps resolved in order
func (ctrl *CourseController) GetCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := ctrl.courses.GetCourseByID(uint(courseID))
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "", fiber.Map{"course": course})
}

// CreateCourse persists a new course
func (ctrl *CourseController) CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*dto.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.courses.CreateCourse(reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", fiber.Map{"course": course})
}

// UpdateCourse applies a partial patch to a course
func (ctrl *CourseController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*dto.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ctrl.courses.UpdateCourse(uint(courseID), reqData)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully", fiber.Map{"course": course})
}

// DeleteCourse removes a course and cascades to its steps
func (ctrl *CourseController) DeleteCourse(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if err := ctrl.courses.DeleteCourse(uint(courseID)); err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}
