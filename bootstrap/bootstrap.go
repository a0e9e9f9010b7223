// Package bootstrap concentra o cold start comum a todos os lambdas:
// configuração (env + SSM), logger global, métricas e clientes AWS.
package bootstrap

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"

	"github.com/raywall/vfs-tracker-services/handlers"
	"github.com/raywall/vfs-tracker-services/pkg/config"
	"github.com/raywall/vfs-tracker-services/pkg/logger"
	"github.com/raywall/vfs-tracker-services/pkg/observability"
	"github.com/raywall/vfs-tracker-services/s3sign"
	"github.com/raywall/vfs-tracker-services/storage"
)

// App agrupa tudo que um main de lambda precisa depois do cold start.
type App struct {
	Config  *config.Config
	Service *handlers.Service
	Metrics observability.Provider
}

// MustInit monta o serviço completo ou aborta o processo. Falha de cold
// start deve derrubar o container: o Lambda recicla e tenta de novo.
func MustInit(ctx context.Context) *App {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração AWS")
	}

	cfg, err := config.Load(ctx, ssm.NewFromConfig(awsCfg))
	if err != nil {
		log.Fatal().Err(err).Msg("falha ao carregar configuração do serviço")
	}

	log.Logger = logger.Configure(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	metrics, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		// Métricas não derrubam o serviço: segue com noop.
		log.Warn().Err(err).Msg("métricas desabilitadas")
		metrics = &observability.NoopProvider{}
	}

	dynamo := dynamodb.NewFromConfig(awsCfg)

	svc := handlers.NewService(
		cfg,
		storage.NewEventRepository(dynamo, cfg.EventsTable, cfg.CreatedAtIndex, cfg.StatusDateIndex),
		storage.NewProfileRepository(dynamo, cfg.ProfilesTable),
		storage.NewSessionRepository(dynamo, cfg.SessionsTable),
		s3sign.NewFromClient(s3.NewFromConfig(awsCfg), cfg.Bucket),
	)

	return &App{Config: cfg, Service: svc, Metrics: metrics}
}
