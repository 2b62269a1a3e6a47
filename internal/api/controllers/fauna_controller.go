package controllers

import (
	"github.com/gin-gonic/gin"

	"naturapi/internal/models/request_models"
	"naturapi/internal/services"
	"naturapi/pkg/utils"
)

type FaunaController struct {
	faunaService services.FaunaServiceInterface
}

func NewFaunaController(faunaService services.FaunaServiceInterface) *FaunaController {
	return &FaunaController{
		faunaService: faunaService,
	}
}

func (f *FaunaController) ListFauna(c *gin.Context) {
	page, ok := pagination(c)
	if !ok {
		return
	}

	fauna, err := f.faunaService.ListFauna(c.Request.Context(), page.Skip, page.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, fauna)
}

func (f *FaunaController) GetFaunaById(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	fauna, err := f.faunaService.GetFaunaById(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, fauna)
}

// CreateFauna godoc
// @Summary Create a fauna record
// @Tags Fauna
// @Accept json
// @Produce json
// @Param request body request_models.CreateFaunaRequest true "Fauna payload"
// @Success 200 {object} response_models.Fauna
// @Failure 404 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Router /fauna/createFauna [post]
func (f *FaunaController) CreateFauna(c *gin.Context) {
	var req request_models.CreateFaunaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	fauna, err := f.faunaService.CreateFauna(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, fauna)
}

func (f *FaunaController) DeleteFauna(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := f.faunaService.DeleteFauna(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondMessage(c, "Fauna deleted")
}
