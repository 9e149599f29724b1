package invoice

import (
	"github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/render"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewHTMLRenderer),
	fx.Provide(render.NewPDFRenderer),
	fx.Provide(service.NewService),
)
