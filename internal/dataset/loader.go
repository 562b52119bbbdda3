// Package dataset loads the agent-augmented fine dining dataset from
// disk. The dataset is a single static snapshot; everything downstream
// treats it as immutable.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/steventanyang/laudure/internal/models"
)

// DefaultPath is where the augmentation pipeline writes the dataset.
const DefaultPath = "data/augmented-fine-dining-dataset.json"

// Load reads and parses the dataset file, validating the structural
// contract before handing it to the aggregators. A dataset without a
// diners list is a fatal input error, not an empty result.
func Load(path string) (*models.DinersList, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	var data models.DinersList
	if err := json.Unmarshal(contents, &data); err != nil {
		return nil, fmt.Errorf("parsing dataset file: %w", err)
	}

	if err := Validate(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Validate checks the dataset's structural contract. Optional nested
// data (agent analysis, tags) is allowed to be absent; the diners list
// itself is not.
func Validate(data *models.DinersList) error {
	if data == nil || data.Diners == nil {
		return fmt.Errorf("dataset: missing diners list")
	}
	return nil
}
