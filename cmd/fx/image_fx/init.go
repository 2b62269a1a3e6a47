package image_fx

import (
	"go.uber.org/fx"

	"naturapi/internal/services"
)

var Module = fx.Provide(services.NewImageService)
