package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/davidbz/ratecard/internal/domain"
)

// LoadRateCard reads a rate card from a YAML or JSON file. A card without a
// name is named after its file.
func LoadRateCard(path string) (*domain.RateCard, error) {
	var card domain.RateCard
	if err := decodeFile(path, &card); err != nil {
		return nil, err
	}

	if card.Model == "" {
		return nil, fmt.Errorf("%s: model is required", path)
	}
	if card.Name == "" {
		card.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return &card, nil
}

// LoadBatchItems reads batch inputs from a YAML or JSON file holding either
// a list of items or an object with an items list.
func LoadBatchItems(path string) ([]domain.BatchItem, error) {
	var items []domain.BatchItem
	if err := decodeFile(path, &items); err == nil {
		return items, nil
	}

	var wrapped struct {
		Items []domain.BatchItem `json:"items" yaml:"items"`
	}
	if err := decodeFile(path, &wrapped); err != nil {
		return nil, err
	}

	return wrapped.Items, nil
}

func decodeFile(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("%s: %w", path, errors.New("file is empty"))
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, dst)
	default:
		err = yaml.Unmarshal(data, dst)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}
