package courseRoutes

import (
	controllers "coursecraft/controllers/course"
	"coursecraft/middleware"
	"coursecraft/services"
	validators "coursecraft/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers course and step routes. Reads are public,
// mutations require a bearer token.
func SetupCourseRoutes(app *fiber.App, courseCtrl *controllers.CourseController, stepCtrl *controllers.StepController, cred *services.CredentialService) {
	courseGroup := app.Group("/api/courses")
	auth := middleware.Protected(cred)

	// Course routes
	courseGroup.Get("/", courseCtrl.GetAllCourses)
	courseGroup.Get("/search", courseCtrl.SearchCourses)
	courseGroup.Get("/:id<int>", courseCtrl.GetCourse)
	courseGroup.Post("/", auth, validators.Create(), courseCtrl.CreateCourse)
	courseGroup.Put("/:id<int>", auth, validators.Update(), courseCtrl.UpdateCourse)
	courseGroup.Delete("/:id<int>", auth, courseCtrl.DeleteCourse)

	// Step routes
	courseGroup.Get("/:courseId<int>/steps", stepCtrl.GetStepsByCourse)
	courseGroup.Get("/:courseId<int>/steps/:id<int>", stepCtrl.GetStep)
	courseGroup.Post("/:courseId<int>/steps", auth, validators.CreateStep(), stepCtrl.CreateStep)
	courseGroup.Put("/:courseId<int>/steps/:id<int>", auth, validators.UpdateStep(), stepCtrl.UpdateStep)
	courseGroup.Delete("/:courseId<int>/steps/:id<int>", auth, stepCtrl.DeleteStep)
	courseGroup.Post("/:courseId<int>/steps/reorder", auth, validators.ReorderSteps(), stepCtrl.ReorderSteps)
}
