package controllers_fx

import (
	"go.uber.org/fx"

	"naturapi/internal/api"
	"naturapi/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPOIsController),
	fx.Provide(controllers.NewFloraController),
	fx.Provide(controllers.NewFaunaController),
	fx.Provide(controllers.NewImageController),
	fx.Provide(controllers.NewHealthController),
	fx.Provide(provideControllers))

func provideControllers(
	pois *controllers.POIsController,
	flora *controllers.FloraController,
	fauna *controllers.FaunaController,
	images *controllers.ImageController,
	health *controllers.HealthController) api.Controllers {

	return api.Controllers{
		POIs:   pois,
		Flora:  flora,
		Fauna:  fauna,
		Images: images,
		Health: health,
	}
}
