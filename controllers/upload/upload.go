package uploadController

import (
	"io"
	"path/filepath"
	"strings"

	"coursecraft/config"
	"coursecraft/middleware"
	"coursecraft/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

// UploadController accepts single-image multipart uploads and hands them to
// local disk or the configured object storage.
type UploadController struct {
	cfg *config.Config
}

func NewUploadController(cfg *config.Config) *UploadController {
	return &UploadController{cfg: cfg}
}

// UploadImage stores the multipart field "image" and returns its URL
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file uploaded", nil)
	}

	if file.Size > maxImageSize {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Upload error: file too large (max 5MB)", nil)
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Not an image! Please upload an image.", nil)
	}

	// Remote object storage when configured, local disk otherwise
	if ctrl.cfg.StorageApiURL != "" {
		src, err := file.Open()
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}
		defer src.Close()

		data, err := io.ReadAll(src)
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}

		filename := uuid.NewString() + filepath.Ext(file.Filename)
		url, err := utils.UploadToStorage(ctrl.cfg, filename, contentType, data)
		if err != nil {
			return middleware.ErrorResponse(c, err)
		}

		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully", fiber.Map{"imageUrl": url})
	}

	filePath, err := utils.SaveUploadedFile(file, ctrl.cfg.UploadDir)
	if err != nil {
		return middleware.ErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Image uploaded successfully", fiber.Map{
		"imageUrl": utils.GetFileURL(filePath),
	})
}
