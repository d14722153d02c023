package main

import (
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/calibra-labs/gascal/internal/benchstore"
	"github.com/calibra-labs/gascal/internal/costmodel"
	"github.com/calibra-labs/gascal/internal/dataset"
	"github.com/calibra-labs/gascal/internal/scoring"
	"github.com/calibra-labs/gascal/internal/utils/logger"
)

var (
	datasetPath = flag.String("dataset_path", "", "path of the dataset file (JSON array of [x, y] pairs)")
	modelPath   = flag.String("model_path", "", "built-in model identifier or path of a linear-model JSON file")
	plot        = flag.Bool("plot", false, "render a terminal plot of the ranked est rates")
)

func main() {
	logger.Init()

	if *datasetPath == "" || *modelPath == "" {
		log.Fatal().Msg("--dataset_path and --model_path are required")
	}

	samples, err := dataset.Load(*datasetPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dataset")
	}

	model, err := costmodel.Load(*modelPath, benchstore.Store{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load model")
	}

	stats, err := scoring.Score(samples, model)
	if err != nil {
		log.Fatal().Err(err).Msg("scoring failed")
	}

	for _, st := range stats {
		fmt.Println(st)
	}

	summary := scoring.Summarize(stats)
	logger.Sugar().Infow("est rate summary",
		"min", summary.Min, "max", summary.Max, "mean", summary.Mean, "median", summary.Median)

	if *plot {
		scoring.PlotEstRatesTerminal(stats, "Model estimation ratios")
	}
}
