package server

import (
	"context"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"

	catalogdomain "github.com/Kavindya2002/mc-computers-invoicing/internal/catalog/domain"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/config"
	invoicedomain "github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/domain"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/invoice/render"
	obslogger "github.com/Kavindya2002/mc-computers-invoicing/internal/observability/logger"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/observability/metrics"
)

type Params struct {
	fx.In

	Cfg          config.Config
	Log          *zap.Logger
	InvoiceSvc   invoicedomain.Service
	CatalogSvc   catalogdomain.Service
	HTML         *render.HTMLRenderer
	PDF          *render.PDFRenderer
	Metrics      *metrics.HTTPMetrics `optional:"true"`
	PromGatherer prometheus.Gatherer  `optional:"true"`
}

type Server struct {
	cfg        config.Config
	log        *zap.Logger
	invoiceSvc invoicedomain.Service
	catalogSvc catalogdomain.Service
	html       *render.HTMLRenderer
	pdf        *render.PDFRenderer
	metrics    *metrics.HTTPMetrics
	gatherer   prometheus.Gatherer
}

func NewServer(p Params) *Server {
	return &Server{
		cfg:        p.Cfg,
		log:        p.Log.Named("server"),
		invoiceSvc: p.InvoiceSvc,
		catalogSvc: p.CatalogSvc,
		html:       p.HTML,
		pdf:        p.PDF,
		metrics:    p.Metrics,
		gatherer:   p.PromGatherer,
	}
}

func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(s.recovery())
	r.Use(obslogger.GinMiddleware(s.log))
	r.Use(metrics.GinMiddleware(s.metrics))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		api.GET("/products", s.ListProducts)
		api.GET("/products/:id", s.GetProductByID)

		api.GET("/invoices", s.ListInvoices)
		api.POST("/invoices", s.CreateInvoice)
		api.GET("/invoices/:id", s.GetInvoiceByID)
		api.PUT("/invoices/:id", s.UpdateInvoice)
		api.DELETE("/invoices/:id", s.DeleteInvoice)
		api.GET("/invoices/:id/html", s.RenderInvoiceHTML)
		api.GET("/invoices/:id/pdf", s.DownloadInvoicePDF)
	}
	return r
}

func Start(lc fx.Lifecycle, s *Server, log *zap.Logger) {
	srv := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.Router(),
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", s.cfg.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

var Module = fx.Module("server",
	fx.Provide(func() (*prometheus.Registry, prometheus.Gatherer) {
		reg := prometheus.NewRegistry()
		return reg, reg
	}),
	fx.Provide(func(reg *prometheus.Registry) (*metrics.HTTPMetrics, error) {
		return metrics.NewHTTPMetrics(reg)
	}),
	fx.Provide(NewServer),
	fx.Invoke(Start),
)
