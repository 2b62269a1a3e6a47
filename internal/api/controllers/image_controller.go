package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"naturapi/internal/models/response_models"
	"naturapi/internal/services"
	"naturapi/pkg/utils"
)

type ImageController struct {
	imageService services.ImageServiceInterface
}

func NewImageController(imageService services.ImageServiceInterface) *ImageController {
	return &ImageController{
		imageService: imageService,
	}
}

// UploadImage godoc
// @Summary Upload an image
// @Description Storage failures are reported in the body with status "error", never as an HTTP error.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} response_models.ImageUpload
// @Failure 422 {object} utils.APIResponse
// @Router /images/upload [post]
func (ic *ImageController) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.RespondFieldError(c, "file", "field required")
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusOK, response_models.ImageUpload{Status: "error", Message: err.Error()})
		return
	}
	defer file.Close()

	url, err := ic.imageService.UploadImage(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		c.JSON(http.StatusOK, response_models.ImageUpload{Status: "error", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, response_models.ImageUpload{Status: "success", URL: url})
}
