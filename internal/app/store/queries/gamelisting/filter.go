package gamelisting

import (
	"context"
	"fmt"

	gamestore "github.com/dalemusser/gamecatalog/internal/app/store/games"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Criteria holds the optional listing parameters. Empty strings are absent.
type Criteria struct {
	Genre    string // genre nombre, exact
	Platform string // platform nombre, exact
	Title    string // case-insensitive substring of titulo
}

// BuildFilter resolves the name-based criteria and composes a game filter.
//
// A genre or platform name that does not resolve still constrains the
// filter, with an id set that matches nothing, so the listing comes back
// empty rather than unfiltered. At most two reference reads are issued and
// the games collection is never read.
func BuildFilter(ctx context.Context, genres, platforms ReferenceLookup, c Criteria) (gamestore.Filter, error) {
	var f gamestore.Filter

	if c.Genre != "" {
		ids, err := resolveName(ctx, genres, c.Genre)
		if err != nil {
			return gamestore.Filter{}, fmt.Errorf("resolve genre %q: %w", c.Genre, err)
		}
		f.GenreIn = ids
	}

	if c.Platform != "" {
		ids, err := resolveName(ctx, platforms, c.Platform)
		if err != nil {
			return gamestore.Filter{}, fmt.Errorf("resolve platform %q: %w", c.Platform, err)
		}
		f.PlatformIn = ids
	}

	f.TitleContains = c.Title
	return f, nil
}

func resolveName(ctx context.Context, refs ReferenceLookup, name string) ([]primitive.ObjectID, error) {
	id, found, err := refs.IDByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if !found {
		return gamestore.MatchNone(), nil
	}
	return []primitive.ObjectID{id}, nil
}
