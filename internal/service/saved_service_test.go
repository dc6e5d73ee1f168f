package service

import (
	"context"
	"errors"
	"testing"

	"estatescout/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stubStore struct {
	entries   map[string][]models.SavedProperty
	createErr error
	listErr   error
	deleteErr error
	getErr    error
}

func newStubStore() *stubStore {
	return &stubStore{entries: make(map[string][]models.SavedProperty)}
}

func (s *stubStore) Create(_ context.Context, entry *models.SavedProperty) error {
	if s.createErr != nil {
		return s.createErr
	}
	for _, e := range s.entries[entry.UserID] {
		if e.PropertyID == entry.PropertyID {
			return models.ErrAlreadySaved
		}
	}
	s.entries[entry.UserID] = append(s.entries[entry.UserID], *entry)
	return nil
}

func (s *stubStore) ListByUser(_ context.Context, userID string) ([]models.SavedProperty, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.entries[userID], nil
}

func (s *stubStore) Delete(_ context.Context, id uuid.UUID, userID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, e := range s.entries[userID] {
		if e.ID == id {
			s.entries[userID] = append(s.entries[userID][:i], s.entries[userID][i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (s *stubStore) GetByUserAndProperty(_ context.Context, userID string, propertyID int) (*models.SavedProperty, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	for _, e := range s.entries[userID] {
		if e.PropertyID == propertyID {
			entry := e
			return &entry, nil
		}
	}
	return nil, models.ErrNotFound
}

func TestSavedServiceWithoutStore(t *testing.T) {
	svc := NewSavedPropertyService(nil, zap.NewNop())

	if svc.Available() {
		t.Error("nil store must report unavailable")
	}

	if _, err := svc.Save(context.Background(), "u1", 1, models.Property{}); !errors.Is(err, models.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}

	entries, err := svc.List(context.Background(), "u1")
	if !errors.Is(err, models.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("degraded list must be empty, not nil: %v", entries)
	}

	if _, saved := svc.IsSaved(context.Background(), "u1", 1); saved {
		t.Error("degraded check must report not saved")
	}

	if err := svc.Delete(context.Background(), uuid.New(), "u1"); !errors.Is(err, models.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestSavedServiceSaveAndList(t *testing.T) {
	store := newStubStore()
	svc := NewSavedPropertyService(store, zap.NewNop())

	property := models.Property{ID: 7, Title: "Condo", Location: "Miami, FL", Price: 300000}
	entry, err := svc.Save(context.Background(), "u1", 7, property)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if entry.ID == uuid.Nil {
		t.Error("save must assign an id")
	}
	if entry.SavedAt.IsZero() {
		t.Error("save must assign a timestamp")
	}
	if entry.UserID != "u1" || entry.PropertyID != 7 {
		t.Errorf("unexpected entry: %+v", entry)
	}

	entries, err := svc.List(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Property.Title != "Condo" {
		t.Errorf("unexpected list: %+v", entries)
	}

	other, err := svc.List(context.Background(), "u2")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("users must not see each other's entries: %+v", other)
	}
}

func TestSavedServiceDuplicateSave(t *testing.T) {
	store := newStubStore()
	svc := NewSavedPropertyService(store, zap.NewNop())

	if _, err := svc.Save(context.Background(), "u1", 7, models.Property{ID: 7}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Save(context.Background(), "u1", 7, models.Property{ID: 7}); !errors.Is(err, models.ErrAlreadySaved) {
		t.Errorf("expected ErrAlreadySaved, got %v", err)
	}

	// The same property for a different user is fine.
	if _, err := svc.Save(context.Background(), "u2", 7, models.Property{ID: 7}); err != nil {
		t.Errorf("expected cross-user save to succeed, got %v", err)
	}
}

func TestSavedServiceListFailureDegrades(t *testing.T) {
	store := newStubStore()
	store.listErr = errors.New("connection refused")
	svc := NewSavedPropertyService(store, zap.NewNop())

	entries, err := svc.List(context.Background(), "u1")
	if !errors.Is(err, models.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("degraded list must be empty: %v", entries)
	}
}

func TestSavedServiceIsSaved(t *testing.T) {
	store := newStubStore()
	svc := NewSavedPropertyService(store, zap.NewNop())

	if _, saved := svc.IsSaved(context.Background(), "u1", 7); saved {
		t.Error("unsaved property must report false")
	}

	if _, err := svc.Save(context.Background(), "u1", 7, models.Property{ID: 7}); err != nil {
		t.Fatal(err)
	}

	entry, saved := svc.IsSaved(context.Background(), "u1", 7)
	if !saved || entry == nil || entry.PropertyID != 7 {
		t.Errorf("expected saved entry, got %v %v", entry, saved)
	}

	// Store failures degrade to "not saved".
	store.getErr = errors.New("connection refused")
	if _, saved := svc.IsSaved(context.Background(), "u1", 7); saved {
		t.Error("store failure must degrade to not saved")
	}
}

func TestSavedServiceDelete(t *testing.T) {
	store := newStubStore()
	svc := NewSavedPropertyService(store, zap.NewNop())

	entry, err := svc.Save(context.Background(), "u1", 7, models.Property{ID: 7})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), entry.ID, "u2"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("deleting another user's entry must fail, got %v", err)
	}
	if err := svc.Delete(context.Background(), entry.ID, "u1"); err != nil {
		t.Errorf("delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), entry.ID, "u1"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}
