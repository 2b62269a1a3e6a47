package controllers

import (
	"github.com/gin-gonic/gin"

	"naturapi/internal/models/request_models"
	"naturapi/internal/services"
	"naturapi/pkg/utils"
)

type FloraController struct {
	floraService services.FloraServiceInterface
}

func NewFloraController(floraService services.FloraServiceInterface) *FloraController {
	return &FloraController{
		floraService: floraService,
	}
}

// ListFlora godoc
// @Summary List flora
// @Tags Flora
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} response_models.Flora
// @Router /flora/getAllFlora [get]
func (f *FloraController) ListFlora(c *gin.Context) {
	page, ok := pagination(c)
	if !ok {
		return
	}

	flora, err := f.floraService.ListFlora(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, flora)
}

func (f *FloraController) GetFloraById(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	flora, err := f.floraService.GetFloraById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, flora)
}

// CreateFlora godoc
// @Summary Create a flora record
// @Description poi_id must reference an existing POI, otherwise 404.
// @Tags Flora
// @Accept json
// @Produce json
// @Param request body request_models.CreateFloraRequest true "Flora payload"
// @Success 200 {object} response_models.Flora
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /flora/flora/ [post]
func (f *FloraController) CreateFlora(c *gin.Context) {
	var req request_models.CreateFloraRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	flora, err := f.floraService.CreateFlora(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, flora)
}

func (f *FloraController) DeleteFlora(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := f.floraService.DeleteFlora(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Flora deleted")
}
