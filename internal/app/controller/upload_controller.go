package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	resterr "github.com/tastebite/tastebite-backend/internal/errors"
	"github.com/tastebite/tastebite-backend/internal/storage"
	"github.com/tastebite/tastebite-backend/pkg/logger"
)

type UploadController struct {
	storage *storage.S3Storage
}

func NewUploadController(storage *storage.S3Storage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

type UploadImageRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

// UploadImage generates a presigned URL for uploading a menu image to S3
// POST /api/restaurant/uploadImage
func (ctrl *UploadController) UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid upload image request", map[string]interface{}{
			"error": err.Error(),
		})
		resterr.Fail(c, http.StatusBadRequest, "Filename and content type are required.")
		return
	}

	allowedTypes := []string{
		"image/jpeg",
		"image/jpg",
		"image/png",
		"image/gif",
		"image/webp",
	}
	if err := ctrl.storage.ValidateContentType(req.ContentType, allowedTypes); err != nil {
		logger.Warn("Invalid content type for menu image", map[string]interface{}{
			"content_type": req.ContentType,
		})
		resterr.Fail(c, http.StatusBadRequest, "Only image files are allowed (JPEG, PNG, GIF, WEBP).")
		return
	}

	response, err := ctrl.storage.GeneratePresignedURL(req.Filename, req.ContentType)
	if err != nil {
		logger.Error("Failed to generate presigned URL", err, map[string]interface{}{
			"filename":     req.Filename,
			"content_type": req.ContentType,
		})
		resterr.FailOK(c, "Could not prepare image upload right now. Please try again.")
		return
	}

	logger.Info("Presigned URL generated for menu image", map[string]interface{}{
		"filename": req.Filename,
		"key":      response.Key,
	})

	c.JSON(http.StatusOK, gin.H{
		"status":     true,
		"upload_url": response.UploadURL,
		"file_url":   response.FileURL,
		"key":        response.Key,
	})
}
