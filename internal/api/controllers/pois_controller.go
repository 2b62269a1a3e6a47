package controllers

import (
	"github.com/gin-gonic/gin"

	"naturapi/internal/models/request_models"
	"naturapi/internal/services"
	"naturapi/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface) *POIsController {
	return &POIsController{
		poiService: poiService,
	}
}

// ListPois godoc
// @Summary List points of interest
// @Tags Punto de Interes
// @Produce json
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} response_models.POI
// @Failure 422 {object} utils.APIResponse
// @Router /poi/getAllPois [get]
func (p *POIsController) ListPois(c *gin.Context) {
	page, ok := pagination(c)
	if !ok {
		return
	}

	pois, err := p.poiService.ListPois(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois)
}

// GetPoiById godoc
// @Summary Get a point of interest
// @Tags Punto de Interes
// @Produce json
// @Param id path int true "POI id"
// @Success 200 {object} response_models.POI
// @Failure 404 {object} utils.APIResponse
// @Router /poi/getPoiById/{id} [get]
func (p *POIsController) GetPoiById(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	poi, err := p.poiService.GetPOIById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi)
}

// CreatePoi godoc
// @Summary Create a point of interest
// @Tags Punto de Interes
// @Accept json
// @Produce json
// @Param request body request_models.CreatePoiRequest true "POI payload"
// @Success 200 {object} response_models.POI
// @Failure 422 {object} utils.APIResponse
// @Router /poi/createPois [post]
func (p *POIsController) CreatePoi(c *gin.Context) {
	var req request_models.CreatePoiRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	poi, err := p.poiService.CreatePoi(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi)
}

// DeletePoi godoc
// @Summary Delete a point of interest
// @Description Succeeds whether or not the POI exists. Flora and fauna pointing at it are kept.
// @Tags Punto de Interes
// @Produce json
// @Param id path int true "POI id"
// @Success 200 {object} response_models.Message
// @Router /poi/deletePoisById/{id} [delete]
func (p *POIsController) DeletePoi(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := p.poiService.DeletePoi(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "POI deleted")
}
