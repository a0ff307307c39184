package main

import (
	"flag"
	"log"

	"github.com/peopleops/attrition/internal/config"
	"github.com/peopleops/attrition/internal/scoring"

	"github.com/joho/godotenv"
)

// Offline companion to the server: synthesizes the training dataset, fits
// the scoring pipeline and writes the artifact pair the server loads.
var (
	rowsFlag    = flag.Int("rows", 60000, "Number of synthetic employee rows")
	seedFlag    = flag.Int64("seed", 42, "Dataset generator seed")
	epochsFlag  = flag.Int("epochs", scoring.DefaultEpochs, "Training epochs")
	lrFlag      = flag.Float64("lr", scoring.DefaultLearningRate, "Learning rate")
	datasetFlag = flag.String("dataset", "data/hr_attrition.csv", "Where to write the generated CSV")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()

	log.Printf("Generating %d rows (seed=%d)", *rowsFlag, *seedFlag)
	ds := scoring.Synthesize(*rowsFlag, *seedFlag)
	if err := ds.WriteCSV(*datasetFlag); err != nil {
		log.Fatalf("write dataset: %v", err)
	}
	log.Printf("Dataset written to %s", *datasetFlag)

	log.Printf("Fitting pipeline (epochs=%d lr=%g)", *epochsFlag, *lrFlag)
	model, err := scoring.Fit(ds, *epochsFlag, *lrFlag)
	if err != nil {
		log.Fatalf("fit model: %v", err)
	}

	// quick self-check against fresh data from the same generator
	holdout := scoring.Synthesize(*rowsFlag/10, *seedFlag+1)
	acc, err := model.Accuracy(holdout)
	if err != nil {
		log.Fatalf("evaluate model: %v", err)
	}
	log.Printf("Holdout accuracy: %.3f", acc)

	if err := model.Save(cfg.ModelPath, cfg.FeaturesPath); err != nil {
		log.Fatalf("save artifacts: %v", err)
	}
	log.Printf("Model saved to %s (+ %s)", cfg.ModelPath, cfg.FeaturesPath)
}
