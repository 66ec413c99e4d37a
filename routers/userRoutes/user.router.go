package userRoutes

import (
	userController "coursecraft/controllers/userControllers"
	"coursecraft/middleware"
	"coursecraft/services"
	"coursecraft/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers account and authentication routes
func SetupUserRoutes(app *fiber.App, ctrl *userController.UserController, cred *services.CredentialService) {
	userGroup := app.Group("/api/users")
	auth := middleware.Protected(cred)

	// Public routes
	userGroup.Post("/register", userValidator.Register(), ctrl.Register)
	userGroup.Post("/login", userValidator.Login(), ctrl.Login)

	// Protected routes
	userGroup.Get("/profile", auth, ctrl.GetProfile)
	userGroup.Patch("/profile", auth, userValidator.UpdateProfile(), ctrl.UpdateProfile)
	userGroup.Post("/change-password", auth, userValidator.ChangePassword(), ctrl.ChangePassword)
	userGroup.Post("/refresh-token", auth, ctrl.RefreshToken)
	userGroup.Delete("/account", auth, ctrl.DeleteAccount)
}
