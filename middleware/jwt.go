package middleware

import (
	"log"
	"sort"
	"strings"

	"coursecraft/dto"
	"coursecraft/services"

	"github.com/gofiber/fiber/v2"
)

// Protected returns a middleware that requires a valid bearer token and
// stores the authenticated user id in the request context.
func Protected(cred *services.CredentialService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Missing or invalid Authorization header", nil)
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid Authorization header format", nil)
		}

		tokenString := authHeader[len("Bearer "):]

		userID, err := cred.VerifyToken(tokenString)
		if err != nil {
			return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
		}

		c.Locals("userId", userID)
		return c.Next()
	}
}

// JsonResponse writes the common response envelope. Extra keys from data are
// merged flat next to success/message.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data fiber.Map) error {
	payload := fiber.Map{"success": success}
	if message != "" {
		payload["message"] = message
	}
	for key, value := range data {
		payload[key] = value
	}
	return c.Status(statusCode).JSON(payload)
}

// ValidationErrorResponse turns a field→message map into a 400 with a
// deterministic list of {field, message} entries.
func ValidationErrorResponse(c *fiber.Ctx, fieldErrors map[string]string) error {
	fields := make([]string, 0, len(fieldErrors))
	for field := range fieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	errs := make([]dto.FieldError, 0, len(fields))
	for _, field := range fields {
		errs = append(errs, dto.FieldError{Field: field, Message: fieldErrors[field]})
	}

	return JsonResponse(c, fiber.StatusBadRequest, false, "", fiber.Map{"errors": errs})
}

// ErrorResponse maps a domain failure to a status code by kind. Unexpected
// errors are logged and answered with a generic message.
func ErrorResponse(c *fiber.Ctx, err error) error {
	switch services.KindOf(err) {
	case services.KindNotFound:
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case services.KindUnauthorized:
		return JsonResponse(c, fiber.StatusUnauthorized, false, err.Error(), nil)
	case services.KindValidation, services.KindDuplicate, services.KindCredentials:
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
