package guest

import (
	"context"
	"errors"
	"testing"

	"hoteladmin/database/docstore"
	guestRepo "hoteladmin/database/repository/guest"
	"hoteladmin/models"
	"hoteladmin/utils"

	"go.uber.org/zap"
)

type mockImageStore struct {
	saveFunc func(ctx context.Context, name string, data []byte) (string, error)
}

func (m *mockImageStore) Save(ctx context.Context, name string, data []byte) (string, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, name, data)
	}
	return "https://img.example.com/" + name, nil
}

func newTestService(images *mockImageStore) (*DefaultGuestService, *docstore.MemoryStore) {
	store := docstore.NewMemoryStore()
	store.Seed(utils.UsersCollection, "u1", map[string]any{
		"email":         "jane@example.com",
		"username":      "Jane",
		"surname":       "Doe",
		"address":       "1 Harbour Rd",
		"contactNumber": 5551234,
		"image":         "https://img.example.com/old.png",
		"lastLogin":     "2024-01-01",
	})
	logger := zap.NewNop()
	return NewGuestService(guestRepo.NewGuestRepo(store, logger), images, logger), store
}

func TestGet_DecodesProfile(t *testing.T) {
	svc, _ := newTestService(&mockImageStore{})

	g, err := svc.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if g.Email != "jane@example.com" || g.ContactNumber != "5551234" {
		t.Errorf("unexpected profile: %+v", g)
	}

	if _, err := svc.Get(context.Background(), "nobody"); !errors.Is(err, ErrGuestNotFound) {
		t.Errorf("Get(nobody) error = %v, want ErrGuestNotFound", err)
	}
}

func TestUpdate_CommitsDraft(t *testing.T) {
	svc, store := newTestService(&mockImageStore{})
	ctx := context.Background()

	g, _ := svc.Get(ctx, "u1")
	draft := g.Draft()
	draft.Address = "  22 Quay St "
	if err := svc.Update(ctx, "u1", draft, nil); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}

	docs, _ := store.List(ctx, utils.UsersCollection)
	fields := docs[0].Fields
	if fields["address"] != "22 Quay St" {
		t.Errorf("address = %v, want trimmed value", fields["address"])
	}
	if fields["image"] != "https://img.example.com/old.png" {
		t.Errorf("image = %v, want unchanged without upload", fields["image"])
	}
	if fields["email"] != "jane@example.com" || fields["lastLogin"] != "2024-01-01" {
		t.Errorf("fields outside the draft were modified: %v", fields)
	}
}

func TestUpdate_ReplacesImage(t *testing.T) {
	svc, _ := newTestService(&mockImageStore{})
	ctx := context.Background()

	err := svc.Update(ctx, "u1", models.GuestDraft{Username: "Jane"}, &ImageUpload{Name: "new.png", Data: []byte("png")})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	g, _ := svc.Get(ctx, "u1")
	if g.Image != "https://img.example.com/new.png" {
		t.Errorf("image = %q, want uploaded URL", g.Image)
	}
}

func TestUpdate_ImageFailureLeavesProfile(t *testing.T) {
	images := &mockImageStore{
		saveFunc: func(ctx context.Context, name string, data []byte) (string, error) {
			return "", errors.New("file is not an image")
		},
	}
	svc, _ := newTestService(images)
	ctx := context.Background()

	err := svc.Update(ctx, "u1", models.GuestDraft{Username: "Changed"}, &ImageUpload{Name: "x.txt", Data: []byte("x")})
	if err == nil {
		t.Fatal("Update() expected error")
	}
	g, _ := svc.Get(ctx, "u1")
	if g.Username != "Jane" {
		t.Errorf("username = %q, draft must be discarded on failure", g.Username)
	}
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService(&mockImageStore{})
	ctx := context.Background()

	if err := svc.Delete(ctx, "u1"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	guests, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(guests) != 0 {
		t.Errorf("List() len = %d after delete, want 0", len(guests))
	}
}
