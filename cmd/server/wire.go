//go:build wireinject

package main

import (
	"github.com/google/wire"
	"edukasi.ai/edu-api-gateway/app/domain"
	"edukasi.ai/edu-api-gateway/app/infrastructure"
	"edukasi.ai/edu-api-gateway/app/interfaces/http"
	"edukasi.ai/edu-api-gateway/app/interfaces/http/routes"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		domain.ServiceProvider,
		routes.RouteProvider,
		http.NewHttpServer,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}
