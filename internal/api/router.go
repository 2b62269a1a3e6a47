package api

import (
	"github.com/gin-gonic/gin"

	"naturapi/internal/api/controllers"
	"naturapi/internal/config"
	"naturapi/internal/storage/local"
	"naturapi/pkg/logger"
	"naturapi/pkg/metrics"
	"naturapi/pkg/middleware"
	"naturapi/pkg/utils"
)

type Controllers struct {
	POIs   *controllers.POIsController
	Flora  *controllers.FloraController
	Fauna  *controllers.FaunaController
	Images *controllers.ImageController
	Health *controllers.HealthController
}

func NewRouter(cfg *config.Config, log *logger.Logger, m *metrics.Manager, ctrl Controllers) *gin.Engine {
	utils.RegisterJSONFieldNames()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log, m))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, ctrl)

	r.GET("/metrics", gin.WrapH(m.Handler()))
	if cfg.StorageBackend == config.StorageBackendLocal {
		r.Static(local.RoutePrefix, cfg.LocalImageDir)
	}

	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/", ctrl.Health.Root)
	r.GET("/healthCheck", ctrl.Health.HealthCheck)

	poiGroup := r.Group("/poi")
	poiGroup.GET("/getAllPois", ctrl.POIs.ListPois)
	poiGroup.GET("/getPoiById/:id", ctrl.POIs.GetPoiById)
	poiGroup.POST("/createPois", ctrl.POIs.CreatePoi)
	poiGroup.DELETE("/deletePoisById/:id", ctrl.POIs.DeletePoi)

	floraGroup := r.Group("/flora")
	floraGroup.GET("/getAllFlora", ctrl.Flora.ListFlora)
	floraGroup.GET("/getFloraById/:id", ctrl.Flora.GetFloraById)
	floraGroup.POST("/flora/", ctrl.Flora.CreateFlora)
	floraGroup.DELETE("/flora/:id", ctrl.Flora.DeleteFlora)

	faunaGroup := r.Group("/fauna")
	faunaGroup.GET("/getAllFauna", ctrl.Fauna.ListFauna)
	faunaGroup.GET("/getFaunaById/:id", ctrl.Fauna.GetFaunaById)
	faunaGroup.POST("/createFauna", ctrl.Fauna.CreateFauna)
	faunaGroup.DELETE("/deleteFaunaById/:id", ctrl.Fauna.DeleteFauna)

	imageGroup := r.Group("/images")
	imageGroup.POST("/upload", ctrl.Images.UploadImage)
}
