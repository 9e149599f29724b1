package catalog

import (
	"github.com/Kavindya2002/mc-computers-invoicing/internal/catalog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("catalog.service",
	fx.Provide(service.NewService),
)
