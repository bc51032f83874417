package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	gamestore "github.com/dalemusser/gamecatalog/internal/app/store/games"
	"github.com/dalemusser/gamecatalog/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemReferences is an in-memory reference collection. It counts reads so
// tests can assert on access patterns. Set Err to make every read fail.
type MemReferences struct {
	mu    sync.RWMutex
	refs  []models.Reference
	reads atomic.Int64

	Err error
}

// NewMemReferences returns a collection holding one document per name.
func NewMemReferences(names ...string) *MemReferences {
	m := &MemReferences{}
	for _, n := range names {
		m.Add(n)
	}
	return m
}

// Add inserts a document named name and returns it.
func (m *MemReferences) Add(name string) models.Reference {
	m.mu.Lock()
	defer m.mu.Unlock()
	ref := models.Reference{ID: primitive.NewObjectID(), Name: name}
	m.refs = append(m.refs, ref)
	return ref
}

// ID returns the id of the first document named name, or NilObjectID.
func (m *MemReferences) ID(name string) primitive.ObjectID {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.refs {
		if r.Name == name {
			return r.ID
		}
	}
	return primitive.NilObjectID
}

// Reads reports how many lookups have been served.
func (m *MemReferences) Reads() int64 {
	return m.reads.Load()
}

func (m *MemReferences) IDByName(_ context.Context, name string) (primitive.ObjectID, bool, error) {
	m.reads.Add(1)
	if m.Err != nil {
		return primitive.NilObjectID, false, m.Err
	}
	id := m.ID(name)
	return id, !id.IsZero(), nil
}

func (m *MemReferences) NameByID(_ context.Context, id primitive.ObjectID) (models.NameRef, bool, error) {
	m.reads.Add(1)
	if m.Err != nil {
		return models.NameRef{}, false, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.refs {
		if r.ID == id {
			return models.NameRef{Name: r.Name}, true, nil
		}
	}
	return models.NameRef{}, false, nil
}

func (m *MemReferences) NamesByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Reference, error) {
	m.reads.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	want := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Reference{}
	for _, r := range m.refs {
		if want[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// All returns every document as a bson.M, like the Mongo-backed store.
func (m *MemReferences) All(_ context.Context) ([]bson.M, error) {
	m.reads.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []bson.M{}
	for _, r := range m.refs {
		out = append(out, bson.M{"_id": r.ID, "nombre": r.Name})
	}
	return out, nil
}

// MemGames is an in-memory games collection evaluated with Filter.Matches.
type MemGames struct {
	mu    sync.RWMutex
	games []models.Game
	reads atomic.Int64

	Err error
}

// NewMemGames returns a collection holding games, assigning missing IDs.
func NewMemGames(games ...models.Game) *MemGames {
	m := &MemGames{}
	for _, g := range games {
		m.Add(g)
	}
	return m
}

// Add inserts g and returns it with its ID set.
func (m *MemGames) Add(g models.Game) models.Game {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	m.games = append(m.games, g)
	return g
}

// Reads reports how many Find calls have been served.
func (m *MemGames) Reads() int64 {
	return m.reads.Load()
}

func (m *MemGames) Find(_ context.Context, f gamestore.Filter) ([]models.Game, error) {
	m.reads.Add(1)
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []models.Game{}
	for _, g := range m.games {
		if f.Matches(g) {
			out = append(out, g)
		}
	}
	return out, nil
}
