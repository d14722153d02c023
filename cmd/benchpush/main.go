package main

import (
	"flag"

	"github.com/rs/zerolog/log"

	"github.com/calibra-labs/gascal/internal/benchstore"
	"github.com/calibra-labs/gascal/internal/config"
	"github.com/calibra-labs/gascal/internal/pushmetrics"
	"github.com/calibra-labs/gascal/internal/utils/logger"
)

func main() {
	logger.Init()

	patterns := flag.Args()
	if len(patterns) == 0 {
		log.Fatal().Msg("usage: benchpush <bench glob pattern> [...]")
	}

	cfg, err := config.LoadPushEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load push config")
	}

	pusher, err := pushmetrics.NewPusher(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize pusher")
	}

	if err := pusher.PushBenches(benchstore.Store{}, patterns); err != nil {
		log.Fatal().Err(err).Msg("failed to push benchmark measurements")
	}
}
