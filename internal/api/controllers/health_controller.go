package controllers

import (
	"github.com/gin-gonic/gin"

	"naturapi/pkg/utils"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

func (h *HealthController) Root(c *gin.Context) {
	utils.RespondMessage(c, "Welcome to the Marketplace API")
}

// HealthCheck godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} response_models.Message
// @Router /healthCheck [get]
func (h *HealthController) HealthCheck(c *gin.Context) {
	utils.RespondMessage(c, "All works!")
}
