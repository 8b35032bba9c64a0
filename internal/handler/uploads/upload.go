package uploads

import (
	"io"
	"net/http"

	"storefront/internal/api"

	"github.com/labstack/echo/v4"
)

// Storer persists an uploaded payload and returns its public URL path.
type Storer interface {
	Store(payload []byte, originalFilename string) (string, error)
}

var ioReadAll = io.ReadAll

// @Summary     Upload a product image
// @Tags        uploads
// @Accept      multipart/form-data
// @Produce     json
// @Param       image formData file true "image file"
// @Success     200 {object} api.UploadResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    AdminSession
// @Router      /upload [post]
func UploadHandler(sink Storer) echo.HandlerFunc {
	return func(c echo.Context) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "image file is required"})
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store upload"})
		}
		defer file.Close()

		payload, err := ioReadAll(file)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store upload"})
		}

		url, err := sink.Store(payload, fileHeader.Filename)
		if err != nil {
			c.Logger().Error(err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to store upload"})
		}
		return c.JSON(http.StatusOK, api.UploadResponse{ImageURL: url})
	}
}
