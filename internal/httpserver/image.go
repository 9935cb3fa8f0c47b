package httpserver

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/techmarket/storefront/internal/logging"
	"github.com/techmarket/storefront/internal/service"
)

type ImageHTTP struct {
	Svc       *service.CatalogService
	UploadDir string
}

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

var unsafeNameChars = regexp.MustCompile(`[^a-z0-9-]`)

func sanitizeFileName(name string) string {
	return unsafeNameChars.ReplaceAllString(strings.ToLower(name), "")
}

func (h *ImageHTTP) Upload(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.upload")

	productID, err := uuid.Parse(c.FormValue("product_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return echo.NewHTTPError(http.StatusBadRequest, "only images are allowed")
	}

	base := sanitizeFileName(c.FormValue("name"))
	if base == "" {
		base = sanitizeFileName(strings.TrimSuffix(file.Filename, ext))
	}
	if base == "" {
		base = "product"
	}
	fileName := fmt.Sprintf("%s-%s%s", base, uuid.NewString()[:8], ext)

	src, err := file.Open()
	if err != nil {
		l.Error("upload_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	defer src.Close()

	if err := os.MkdirAll(h.UploadDir, 0o755); err != nil {
		l.Error("upload_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	dst, err := os.Create(filepath.Join(h.UploadDir, fileName))
	if err != nil {
		l.Error("upload_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		l.Error("upload_error", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	image, err := h.Svc.AddImage(ctx, productID, "/uploads/"+fileName, file.Filename)
	if err != nil {
		return respondError(c, l, "upload_error", err)
	}

	l.Info("image_uploaded", "product_id", productID, "file", fileName)
	return c.JSON(http.StatusCreated, image)
}

func (h *ImageHTTP) ListByProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.list")

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	images, err := h.Svc.ImagesByProduct(ctx, productID)
	if err != nil {
		return respondError(c, l, "list_images_error", err)
	}
	return c.JSON(http.StatusOK, images)
}

func (h *ImageHTTP) Delete(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "image.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	if err := h.Svc.DeleteImage(ctx, id); err != nil {
		return respondError(c, l, "delete_image_error", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Image deleted"})
}
