package gamelisting

import (
	"context"
	"fmt"

	"github.com/dalemusser/gamecatalog/internal/domain/models"
)

// Service answers game listing requests. It holds no per-request state and
// is safe for concurrent use.
type Service struct {
	src  Sources
	mode PopulateMode
}

// NewService returns a Service reading from src.
func NewService(src Sources, mode PopulateMode) *Service {
	if mode == "" {
		mode = PerRecord
	}
	return &Service{src: src, mode: mode}
}

// Mode reports how the service resolves references.
func (s *Service) Mode() PopulateMode {
	return s.mode
}

// List builds the filter for c, fetches the matching games and returns
// their denormalized views. Nothing matching is an empty slice, not an error.
func (s *Service) List(ctx context.Context, c Criteria) ([]models.GameView, error) {
	f, err := BuildFilter(ctx, s.src.Genres, s.src.Platforms, c)
	if err != nil {
		return nil, err
	}

	games, err := s.src.Games.Find(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("find games: %w", err)
	}

	if s.mode == Batched {
		return PopulateBatched(ctx, s.src, games)
	}
	return Populate(ctx, s.src, games)
}
