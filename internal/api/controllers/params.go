package controllers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"naturapi/internal/models/request_models"
	"naturapi/pkg/utils"
)

// pathID parses the :id route parameter. On failure it has already written
// a 422 and returns false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		utils.HandleServiceError(c, fmt.Errorf("%w: %w", utils.ErrInvalidID, err))
		return 0, false
	}
	return id, true
}

// pagination binds skip/limit with their defaults (0 and 10).
func pagination(c *gin.Context) (request_models.Pagination, bool) {
	var p request_models.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		utils.RespondValidationError(c, err)
		return p, false
	}
	return p, true
}
