package infrastructure

import (
	"github.com/google/wire"
	domaininference "edukasi.ai/edu-api-gateway/app/domain/inference"
	"edukasi.ai/edu-api-gateway/app/infrastructure/cache"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database"
	"edukasi.ai/edu-api-gateway/app/infrastructure/database/repository"
	"edukasi.ai/edu-api-gateway/app/infrastructure/inference"
	"edukasi.ai/edu-api-gateway/app/utils/httpclients/gemini"
)

var InfrastructureProvider = wire.NewSet(
	database.NewDB,
	repository.RepositoryProvider,
	cache.NewRedisCacheService,
	gemini.NewClient,
	inference.NewGeminiProvider,
	inference.NewOpenAIProvider,
	inference.NewMultiProviderInference,
	wire.Bind(new(domaininference.Provider), new(*inference.MultiProviderInference)),
)
