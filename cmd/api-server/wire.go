//go:build wireinject
// +build wireinject

package main

import (
	"Persona/config"
	"Persona/dao"
	"Persona/handler"
	"Persona/pkg/database"
	"Persona/pkg/server"
	"Persona/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		server.NewGinEngine,

		wire.Struct(new(handler.Profile), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
