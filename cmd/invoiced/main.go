package main

import (
	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Kavindya2002/mc-computers-invoicing/internal/catalog"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/clock"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/config"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/invoice"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/logger"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/migration"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/seed"
	"github.com/Kavindya2002/mc-computers-invoicing/internal/server"
	"github.com/Kavindya2002/mc-computers-invoicing/pkg/db"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(func() *snowflake.Node {
			node, err := snowflake.NewNode(1)
			if err != nil {
				panic(err)
			}
			return node
		}),
		clock.Module,
		db.Module,
		fx.Invoke(func(conn *gorm.DB) error {
			if err := migration.Run(conn); err != nil {
				return err
			}
			return seed.EnsureCatalog(conn)
		}),
		catalog.Module,
		invoice.Module,
		server.Module,
	)
	app.Run()
}
