package fauna_fx

import (
	"go.uber.org/fx"

	"naturapi/internal/repositories"
	"naturapi/internal/services"
)

var Module = fx.Provide(
	repositories.NewFaunaRepository, services.NewFaunaService)
