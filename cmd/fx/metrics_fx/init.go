package metrics_fx

import (
	"go.uber.org/fx"

	"naturapi/pkg/metrics"
)

var Module = fx.Provide(metrics.NewManager)
