package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/trottparts/garage-api/internal/catalog"
	"github.com/trottparts/garage-api/internal/domain"
)

// seedPart is one catalog entry in the seed file.
type seedPart struct {
	Name            string `json:"name" validate:"required,max=200"`
	Category        string `json:"category"`
	DifficultyLevel int    `json:"difficulty_level" validate:"gte=0,lte=5"`
	PriceCents      int    `json:"price_cents" validate:"gte=0"`
	ImageURL        string `json:"image_url"`
}

type catalogSeed struct {
	Parts []seedPart `json:"parts" validate:"required,dive"`
}

// SyncCatalog loads the catalog seed file and creates any parts not already
// present, matching by name. Existing parts are left untouched so manual
// catalog edits survive restarts.
func SyncCatalog(ctx context.Context, path string, catalogService catalog.Service) error {
	if path == "" {
		slog.Debug(LogMsgCatalogSeedSkipped)
		return nil
	}

	slog.Info(LogMsgSeedingCatalog, "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalogSeed, err)
	}

	var seed catalogSeed
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalogSeed, err)
	}
	if err := validator.New().Struct(seed); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalogSeed, err)
	}

	existing, err := catalogService.ListParts(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
	}
	byName := make(map[string]bool, len(existing))
	for _, part := range existing {
		byName[part.Name] = true
	}

	created := 0
	for _, entry := range seed.Parts {
		if byName[entry.Name] {
			continue
		}
		part := &domain.Part{
			ID:              uuid.NewString(),
			Name:            entry.Name,
			CategoryName:    entry.Category,
			DifficultyLevel: entry.DifficultyLevel,
			PriceCents:      entry.PriceCents,
			ImageURL:        entry.ImageURL,
		}
		if err := catalogService.CreatePart(ctx, part); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedSeedCatalog, err)
		}
		created++
	}

	slog.Info(LogMsgCatalogSeeded, "total", len(seed.Parts), "created", created)
	return nil
}
