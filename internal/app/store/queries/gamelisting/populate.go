package gamelisting

import (
	"context"
	"fmt"

	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PopulateMode selects how weak references are resolved.
type PopulateMode string

const (
	// PerRecord resolves each game on its own: up to three reads per game.
	PerRecord PopulateMode = "per_record"
	// Batched collects ids across all games and issues one read per
	// reference kind, then maps names back by id.
	Batched PopulateMode = "batched"
)

// ParsePopulateMode validates a configured mode. Empty means PerRecord.
func ParsePopulateMode(s string) (PopulateMode, error) {
	switch PopulateMode(s) {
	case "", PerRecord:
		return PerRecord, nil
	case Batched:
		return Batched, nil
	}
	return "", fmt.Errorf("unknown populate mode %q (want %q or %q)", s, PerRecord, Batched)
}

// Populate denormalizes games one at a time, in order.
//
// For each game it reads the genre and developer names (if referenced) and
// the platform names in one $in query. Unresolved references are left out
// of the view. The first read error aborts the whole call.
func Populate(ctx context.Context, src Sources, games []models.Game) ([]models.GameView, error) {
	out := make([]models.GameView, 0, len(games))
	for _, g := range games {
		v, err := populateOne(ctx, src, g)
		if err != nil {
			return nil, fmt.Errorf("populate game %s: %w", g.ID.Hex(), err)
		}
		out = append(out, v)
	}
	return out, nil
}

func populateOne(ctx context.Context, src Sources, g models.Game) (models.GameView, error) {
	v := models.NewGameView(g)

	if g.GenreID != nil {
		ref, found, err := src.Genres.NameByID(ctx, *g.GenreID)
		if err != nil {
			return v, fmt.Errorf("genre: %w", err)
		}
		if found {
			v.Genre = &ref
		}
	}

	if g.DeveloperID != nil {
		ref, found, err := src.Developers.NameByID(ctx, *g.DeveloperID)
		if err != nil {
			return v, fmt.Errorf("developer: %w", err)
		}
		if found {
			v.Developer = &ref
		}
	}

	if len(g.PlatformIDs) > 0 {
		refs, err := src.Platforms.NamesByIDs(ctx, g.PlatformIDs)
		if err != nil {
			return v, fmt.Errorf("platforms: %w", err)
		}
		for _, r := range refs {
			v.Platforms = append(v.Platforms, models.NameRef{Name: r.Name})
		}
	}

	return v, nil
}

// PopulateBatched produces the same views as Populate with at most three
// reads in total. Platforms are listed in the order the game references
// them; ids that do not resolve are skipped.
func PopulateBatched(ctx context.Context, src Sources, games []models.Game) ([]models.GameView, error) {
	var genreIDs, devIDs, platIDs idSet
	for _, g := range games {
		if g.GenreID != nil {
			genreIDs.add(*g.GenreID)
		}
		if g.DeveloperID != nil {
			devIDs.add(*g.DeveloperID)
		}
		for _, id := range g.PlatformIDs {
			platIDs.add(id)
		}
	}

	genres, err := namesByID(ctx, src.Genres, genreIDs.ids)
	if err != nil {
		return nil, fmt.Errorf("genres: %w", err)
	}
	devs, err := namesByID(ctx, src.Developers, devIDs.ids)
	if err != nil {
		return nil, fmt.Errorf("developers: %w", err)
	}
	plats, err := namesByID(ctx, src.Platforms, platIDs.ids)
	if err != nil {
		return nil, fmt.Errorf("platforms: %w", err)
	}

	out := make([]models.GameView, 0, len(games))
	for _, g := range games {
		v := models.NewGameView(g)
		if g.GenreID != nil {
			if name, ok := genres[*g.GenreID]; ok {
				v.Genre = &models.NameRef{Name: name}
			}
		}
		if g.DeveloperID != nil {
			if name, ok := devs[*g.DeveloperID]; ok {
				v.Developer = &models.NameRef{Name: name}
			}
		}
		for _, id := range g.PlatformIDs {
			if name, ok := plats[id]; ok {
				v.Platforms = append(v.Platforms, models.NameRef{Name: name})
			}
		}
		out = append(out, v)
	}
	return out, nil
}

func namesByID(ctx context.Context, refs ReferenceLookup, ids []primitive.ObjectID) (map[primitive.ObjectID]string, error) {
	m := make(map[primitive.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return m, nil
	}
	found, err := refs.NamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, r := range found {
		m[r.ID] = r.Name
	}
	return m, nil
}

// idSet keeps distinct ids in first-seen order.
type idSet struct {
	seen map[primitive.ObjectID]struct{}
	ids  []primitive.ObjectID
}

func (s *idSet) add(id primitive.ObjectID) {
	if s.seen == nil {
		s.seen = make(map[primitive.ObjectID]struct{})
	}
	if _, ok := s.seen[id]; ok {
		return
	}
	s.seen[id] = struct{}{}
	s.ids = append(s.ids, id)
}
