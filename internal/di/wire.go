//go:build wireinject
// +build wireinject

package di

import (
	"TronLens/internal/usecase"
	"TronLens/pkg/config"
	"TronLens/pkg/server"

	"github.com/google/wire"
)

var explorerSet = wire.NewSet(
	ProvideMetrics,
	ProvideExplorerClient,
	ProvideExplorer,
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		// Infrastructure
		ProvideKafkaProducer,
		ProvideLogger,
		ProvideProxyCache,
		explorerSet,

		// Use cases
		ProvideAnalyzer,

		// HTTP
		ProvideProxyHandler,
		ProvideAnalysisHandler,
		ProvideHTTPHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return nil, nil, nil
}

// InitializeAnalyzer wires the analysis use case alone, for the CLI.
func InitializeAnalyzer(cfg *config.Config) (*usecase.AddressAnalyzer, func(), error) {
	wire.Build(
		ProvideKafkaProducer,
		ProvideLogger,
		explorerSet,
		ProvideAnalyzer,
	)
	return nil, nil, nil
}
