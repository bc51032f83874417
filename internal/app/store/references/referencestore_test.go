package referencestore_test

import (
	"testing"

	referencestore "github.com/dalemusser/gamecatalog/internal/app/store/references"
	"github.com/dalemusser/gamecatalog/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_IDByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := referencestore.NewGenres(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	action := fx.CreateGenre(ctx, "Action")

	id, found, err := store.IDByName(ctx, "Action")
	if err != nil {
		t.Fatalf("IDByName failed: %v", err)
	}
	if !found || id != action.ID {
		t.Errorf("got (%s, %v), want (%s, true)", id.Hex(), found, action.ID.Hex())
	}

	// Exact match only: different case is a miss, not an error.
	_, found, err = store.IDByName(ctx, "action")
	if err != nil {
		t.Fatalf("IDByName failed: %v", err)
	}
	if found {
		t.Error("expected case-different name to miss")
	}
}

func TestStore_NameByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := referencestore.NewDevelopers(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	valve := fx.CreateDeveloper(ctx, "Valve")

	ref, found, err := store.NameByID(ctx, valve.ID)
	if err != nil {
		t.Fatalf("NameByID failed: %v", err)
	}
	if !found || ref.Name != "Valve" {
		t.Errorf("got (%+v, %v), want ({Valve}, true)", ref, found)
	}

	_, found, err = store.NameByID(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("NameByID failed: %v", err)
	}
	if found {
		t.Error("expected unknown id to miss")
	}
}

func TestStore_NamesByIDs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := referencestore.NewPlatforms(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	pc := fx.CreatePlatform(ctx, "PC")
	fx.CreatePlatform(ctx, "Switch")

	refs, err := store.NamesByIDs(ctx, []primitive.ObjectID{pc.ID, primitive.NewObjectID()})
	if err != nil {
		t.Fatalf("NamesByIDs failed: %v", err)
	}
	if len(refs) != 1 || refs[0].Name != "PC" || refs[0].ID != pc.ID {
		t.Errorf("got %+v, want [{%s PC}]", refs, pc.ID.Hex())
	}

	refs, err = store.NamesByIDs(ctx, nil)
	if err != nil {
		t.Fatalf("NamesByIDs(nil) failed: %v", err)
	}
	if refs == nil || len(refs) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", refs)
	}
}

func TestStore_All(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := referencestore.NewGenres(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	docs, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if docs == nil || len(docs) != 0 {
		t.Fatalf("expected empty non-nil slice on empty collection, got %#v", docs)
	}

	fx.CreateGenre(ctx, "Action")
	fx.CreateGenre(ctx, "RPG")

	docs, err = store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	for _, d := range docs {
		if _, ok := d["_id"]; !ok {
			t.Error("expected _id field")
		}
		if _, ok := d["nombre"].(string); !ok {
			t.Errorf("expected nombre string, got %T", d["nombre"])
		}
	}
	if store.Name() != "generos" {
		t.Errorf("Name: got %q, want %q", store.Name(), "generos")
	}
}
