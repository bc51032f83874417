// internal/app/store/games/filter.go
package gamestore

import (
	"regexp"
	"strings"

	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Filter selects games. The zero Filter matches every game.
//
// GenreIn and PlatformIn distinguish nil from empty: a nil slice imposes no
// constraint, while an empty non-nil slice matches nothing. Constraints are
// combined with AND.
type Filter struct {
	GenreIn       []primitive.ObjectID
	PlatformIn    []primitive.ObjectID
	TitleContains string
}

// MatchNone is the id set used for a reference name that did not resolve.
func MatchNone() []primitive.ObjectID {
	return []primitive.ObjectID{}
}

// BSON renders the filter as a MongoDB query document.
func (f Filter) BSON() bson.M {
	q := bson.M{}
	if f.GenreIn != nil {
		q["genero_id"] = idConstraint(f.GenreIn)
	}
	if f.PlatformIn != nil {
		// equality on an array field matches when any element is equal
		q["plataformas"] = idConstraint(f.PlatformIn)
	}
	if f.TitleContains != "" {
		q["titulo"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.TitleContains), Options: "i"}
	}
	return q
}

func idConstraint(ids []primitive.ObjectID) any {
	if len(ids) == 1 {
		return ids[0]
	}
	return bson.M{"$in": ids}
}

// Matches evaluates the filter against g in memory, with the same
// semantics as BSON.
func (f Filter) Matches(g models.Game) bool {
	if f.GenreIn != nil {
		if g.GenreID == nil || !containsID(f.GenreIn, *g.GenreID) {
			return false
		}
	}
	if f.PlatformIn != nil {
		hit := false
		for _, id := range g.PlatformIDs {
			if containsID(f.PlatformIn, id) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if f.TitleContains != "" {
		if !strings.Contains(strings.ToLower(g.Title), strings.ToLower(f.TitleContains)) {
			return false
		}
	}
	return true
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
