package handler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"freelancehub/internal/infrastructure/storage"
	"freelancehub/pkg/config"
	"freelancehub/pkg/errors"
	"freelancehub/pkg/response"
)

// FileHandler uploads images to cloud storage when a bucket is configured
// and falls back to the local uploads directory otherwise.
type FileHandler struct {
	storageClient *storage.CloudStorageClient
	cfg           *config.Config
}

var fileHandler *FileHandler

func SetupFileHandler(storageClient *storage.CloudStorageClient, cfg *config.Config) {
	fileHandler = &FileHandler{
		storageClient: storageClient,
		cfg:           cfg,
	}
}

func GetFileHandler() *FileHandler {
	return fileHandler
}

func (h *FileHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("No file provided", err))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to open uploaded file", err))
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	var url string
	if h.storageClient != nil {
		url, err = h.storageClient.UploadFile(c.Request().Context(), src, contentType)
	} else {
		url, err = h.saveLocal(src, fileHeader.Filename)
	}
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store uploaded file", err))
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}

func (h *FileHandler) saveLocal(src io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll("uploads", 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s%s", uuid.New().String(), time.Now().Format("20060102150405"), filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join("uploads", name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return h.cfg.PublicBaseURL + "/uploads/" + name, nil
}
