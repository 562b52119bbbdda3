// Command augment fills in missing agent analyses for a diner dataset
// and writes the augmented copy. The dashboard server never calls the
// LLM; it only reads this command's output.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/steventanyang/laudure/internal/augment"
	"github.com/steventanyang/laudure/internal/dataset"
)

var (
	inputPath  = flag.String("input", "data/fine-dining-dataset.json", "Path to the raw dataset")
	outputPath = flag.String("output", dataset.DefaultPath, "Where to write the augmented dataset")
	modelName  = flag.String("model", "gpt-4o", "OpenAI model to use")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		log.Println("Environment loaded from .env")
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	data, err := dataset.Load(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	coordinator, err := augment.NewCoordinator(apiKey, *modelName)
	if err != nil {
		log.Fatalf("Failed to initialize coordinator: %v", err)
	}

	augmented, err := coordinator.Dataset(context.Background(), data)
	if err != nil {
		log.Fatalf("Augmentation failed: %v", err)
	}

	contents, err := json.MarshalIndent(augmented, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode augmented dataset: %v", err)
	}
	if err := os.WriteFile(*outputPath, contents, 0o644); err != nil {
		log.Fatalf("Failed to write augmented dataset: %v", err)
	}

	log.Printf("Wrote augmented dataset to %s", *outputPath)
}
