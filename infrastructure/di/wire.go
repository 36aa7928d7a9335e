//go:build wireinject
// +build wireinject

package di

import (
	"context"

	commandbus "aura-backend/application/commands/bus"
	"aura-backend/application/ports"
	querybus "aura-backend/application/queries/bus"
	"aura-backend/application/services"
	"aura-backend/infrastructure/config"
	"aura-backend/interfaces/http/rest"
	"aura-backend/interfaces/websocket"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *zap.Logger
	ReflectionRepo ports.ReflectionRepository
	JourneyRepo    ports.JourneyRepository
	ThemeProvider  ports.ThemeProvider
	JourneyService *services.JourneyService
	Scheduler      *services.ResonanceScheduler
	Hub            *websocket.Hub
	CommandBus     *commandbus.CommandBus
	QueryBus       *querybus.QueryBus
	Router         *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideReflectionRepository,
	ProvideJourneyRepository,
	ProvideThemeProvider,
	ProvideJourneyService,
	ProvideHub,
	ProvideResonanceScheduler,
	ProvideJWTValidator,
	ProvideWSServer,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
