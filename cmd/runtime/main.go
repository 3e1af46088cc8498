package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	container "github.com/thehyperflames/dicontainer-go"

	"github.com/hxuan190/swap-gateway/internal/common"
	"github.com/hxuan190/swap-gateway/internal/config"
	"github.com/hxuan190/swap-gateway/internal/http"
	"github.com/hxuan190/swap-gateway/internal/services/aleo"
	"github.com/hxuan190/swap-gateway/internal/services/catalog"
	"github.com/hxuan190/swap-gateway/internal/services/quoter"
)

// @title Jumper Swap Gateway API
// @version 1.0-beta
// @description Cross-chain swap gateway: normalized route aggregation plus an Aleo bridge path.
// @description
// @description ## - Features
// @description - **Route Aggregation**: Candidate routes fetched from LI.FI, normalized for display
// @description - **Route Tagging**: "Best Return" / "Fastest" / "Cheapest" labels per request
// @description - **Aleo Bridge**: Quotes, wallet transaction payloads, explorer status probes
// @description - **Relayer Queue**: Destination-chain claim requests for bridged funds
// @description - **Chain/Token Catalog**: Reference data cached on disk between restarts
// @description
// @description ## - Amount Format
// @description - Route requests take human-decimal amounts ("1.5" = 1.5 ETH)
// @description - Conversion to base units uses the token's decimals server side
// @description - Bridge amounts are human-decimal credits (1 credit = 1,000,000 microcredits)
// @description
// @description ## - API Status
// @description - **Version**: 1.0-beta
// @description - **Status**: Beta - Active Development
// @description - **Rate Limit**: 10 requests/second (burst: 20)
// @host localhost:8080
// @BasePath /
// @schemes https http
// @tag.name routes
// @tag.description Normalized, tagged swap routes and session quoting settings
// @tag.name lifi
// @tag.description Raw aggregator passthrough for clients that want upstream payloads
// @tag.name catalog
// @tag.description Supported chains and their token lists
// @tag.name bridge
// @tag.description Aleo bridge quotes, transactions, status and relayer

func main() {
	// load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("no .env file loaded")
	}

	generalConf := &config.GeneralConfig{}

	// di container config
	conf := container.NewConf(
		generalConf,
		&config.AggregatorConfig{},
		&config.BridgeConfig{},
	)

	// di container
	dic, err := container.New(
		conf,

		&quoter.Service{},
		&catalog.Service{},
		&aleo.Service{},

		&http.HTTPService{},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to create di container")
		return
	}

	common.ConfigureLogging(generalConf.LogLevel, generalConf.Env)

	if err := dic.Run(); err != nil {
		log.Error().Err(err).Msg("failed to run di container")
		return
	}

	log.Info().Msg("Shutting down services...")
	if err := dic.Stop(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("Shutdown complete")
}
