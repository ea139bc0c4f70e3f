//go:build wireinject
// +build wireinject

package main

import (
	"Gallery/config"
	"Gallery/dao"
	"Gallery/handler"
	"Gallery/pkg/database"
	"Gallery/pkg/server"
	"Gallery/pkg/storage"
	"Gallery/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		server.NewGinEngine,
		storage.NewDisk,

		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Category), "*"),
		wire.Struct(new(handler.Image), "*"),
		wire.Struct(new(handler.Comment), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
