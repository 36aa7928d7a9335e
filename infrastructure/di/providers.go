package di

import (
	"context"
	"fmt"

	"aura-backend/application/commands"
	commandbus "aura-backend/application/commands/bus"
	commandhandlers "aura-backend/application/commands/handlers"
	"aura-backend/application/ports"
	"aura-backend/application/queries"
	querybus "aura-backend/application/queries/bus"
	queryhandlers "aura-backend/application/queries/handlers"
	"aura-backend/application/services"
	domainconfig "aura-backend/domain/config"
	"aura-backend/infrastructure/config"
	dynamostore "aura-backend/infrastructure/persistence/dynamodb"
	"aura-backend/infrastructure/persistence/memory"
	"aura-backend/interfaces/http/rest"
	"aura-backend/interfaces/websocket"
	"aura-backend/pkg/auth"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance at the configured level
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}

	var zapCfg zap.Config
	if cfg.Environment == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

// ProvideDomainConfig creates the engine tuning configuration
func ProvideDomainConfig(cfg *config.Config) *domainconfig.DomainConfig {
	dc := domainconfig.DefaultDomainConfig()
	dc.RefreshInterval = cfg.ResonanceInterval
	return dc
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideReflectionRepository creates a reflection repository
func ProvideReflectionRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ReflectionRepository {
	if cfg.UseMemoryStore {
		return memory.NewReflectionStore()
	}
	return dynamostore.NewReflectionRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideJourneyRepository creates a precomputed-journey repository
func ProvideJourneyRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.JourneyRepository {
	if cfg.UseMemoryStore {
		return memory.NewJourneyStore()
	}
	return dynamostore.NewJourneyRepository(client, cfg.DynamoDBTable, logger)
}

// ProvideThemeProvider creates a theme store
func ProvideThemeProvider(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ThemeProvider {
	if cfg.UseMemoryStore {
		return memory.NewThemeStore()
	}
	return dynamostore.NewThemeStore(client, cfg.DynamoDBTable, logger)
}

// ProvideJourneyService creates the analysis pipeline service
func ProvideJourneyService(
	reflections ports.ReflectionRepository,
	journeys ports.JourneyRepository,
	themes ports.ThemeProvider,
	dc *domainconfig.DomainConfig,
	cfg *config.Config,
	logger *zap.Logger,
) *services.JourneyService {
	return services.NewJourneyService(reflections, journeys, themes, dc, logger).
		WithDepthScoring(cfg.EnableDepthScoring).
		WithFetchLimit(cfg.ReflectionLimit)
}

// ProvideHub creates the websocket hub
func ProvideHub(logger *zap.Logger) *websocket.Hub {
	return websocket.NewHub(logger)
}

// ProvideResonanceScheduler creates the resonance refresh loop and attaches
// it to the hub as its subscriber registry.
func ProvideResonanceScheduler(
	journeys *services.JourneyService,
	hub *websocket.Hub,
	dc *domainconfig.DomainConfig,
	cfg *config.Config,
	logger *zap.Logger,
) *services.ResonanceScheduler {
	scheduler := services.NewResonanceScheduler(journeys, hub, cfg.ResonanceInterval, dc, logger)
	hub.SetRegistry(scheduler)
	return scheduler
}

// ProvideJWTValidator creates the token validator shared by the REST and
// websocket layers
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: cfg.JWTSecret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideWSServer creates the websocket upgrade handler
func ProvideWSServer(hub *websocket.Hub, validator *auth.JWTValidator, logger *zap.Logger) *websocket.Server {
	return websocket.NewServer(hub, validator, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	commandBus *commandbus.CommandBus,
	queryBus *querybus.QueryBus,
	wsServer *websocket.Server,
	validator *auth.JWTValidator,
	cfg *config.Config,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(commandBus, queryBus, wsServer, validator, cfg, logger)
}

// ProvideCommandBus creates and wires the command bus
func ProvideCommandBus(
	reflections ports.ReflectionRepository,
	themes ports.ThemeProvider,
	logger *zap.Logger,
) (*commandbus.CommandBus, error) {
	cb := commandbus.NewCommandBus()
	logged := commandbus.LoggingMiddleware(logger)

	if err := cb.Register(commands.CreateReflectionCommand{}, logged(commandhandlers.NewCreateReflectionHandler(reflections, logger))); err != nil {
		return nil, err
	}
	if err := cb.Register(commands.SetThemeCommand{}, logged(commandhandlers.NewSetThemeHandler(themes, logger))); err != nil {
		return nil, err
	}

	return cb, nil
}

// ProvideQueryBus creates and wires the query bus
func ProvideQueryBus(
	journeys *services.JourneyService,
	scheduler *services.ResonanceScheduler,
	dc *domainconfig.DomainConfig,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	qb := querybus.NewQueryBus()

	journeyHandler := queryhandlers.NewGetJourneyHandler(journeys, dc, logger)
	if err := qb.Register(queries.GetJourneyQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return journeyHandler.Handle(ctx, q.(queries.GetJourneyQuery))
		},
	)); err != nil {
		return nil, err
	}

	resonanceHandler := queryhandlers.NewGetResonanceHandler(scheduler, logger)
	if err := qb.Register(queries.GetResonanceQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, q querybus.Query) (interface{}, error) {
			return resonanceHandler.Handle(ctx, q.(queries.GetResonanceQuery))
		},
	)); err != nil {
		return nil, err
	}

	return qb, nil
}
