package uploadRoutes

import (
	uploadController "coursecraft/controllers/upload"
	"coursecraft/middleware"
	"coursecraft/services"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes registers the image upload route
func SetupUploadRoutes(app *fiber.App, ctrl *uploadController.UploadController, cred *services.CredentialService) {
	app.Post("/api/upload", middleware.Protected(cred), ctrl.UploadImage)
}
