package main

import (
	"flag"
	"os"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"github.com/calibra-labs/gascal/internal/benchstore"
	"github.com/calibra-labs/gascal/internal/utils/logger"
)

var (
	benchPath = flag.String("bench_path", "", "serial bench directory, e.g. target/criterion/hash/SHA2-256")
	outPath   = flag.String("out", "", "dataset file to write (JSON array of [x, y] pairs)")
)

func main() {
	logger.Init()

	if *benchPath == "" || *outPath == "" {
		log.Fatal().Msg("--bench_path and --out are required")
	}

	samples, err := benchstore.Store{}.LoadDatapoints(*benchPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load serial bench datapoints")
	}

	pairs := make([][]any, len(samples))
	for i, sample := range samples {
		pairs[i] = []any{sample.X, sample.Y}
	}

	raw, err := sonic.Marshal(pairs)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal dataset")
	}
	if err := os.WriteFile(*outPath, raw, 0o644); err != nil {
		log.Fatal().Err(err).Msg("failed to write dataset file")
	}

	log.Info().Int("samples", len(samples)).Str("out", *outPath).Msg("wrote dataset")
}
