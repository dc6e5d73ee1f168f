package service

import (
	"context"
	"errors"
	"time"

	"estatescout/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SavedPropertyStore is the persistence contract for favorites.
type SavedPropertyStore interface {
	Create(ctx context.Context, entry *models.SavedProperty) error
	ListByUser(ctx context.Context, userID string) ([]models.SavedProperty, error)
	Delete(ctx context.Context, id uuid.UUID, userID string) error
	GetByUserAndProperty(ctx context.Context, userID string, propertyID int) (*models.SavedProperty, error)
}

// SavedPropertyService wraps the store with the degradation policy: without
// a reachable database, reads return empty results and writes surface
// ErrStoreUnavailable, so the rest of the service keeps working.
type SavedPropertyService struct {
	store  SavedPropertyStore // nil when no database is configured
	logger *zap.Logger
}

func NewSavedPropertyService(store SavedPropertyStore, logger *zap.Logger) *SavedPropertyService {
	return &SavedPropertyService{
		store:  store,
		logger: logger,
	}
}

// Available reports whether the backing store is configured.
func (s *SavedPropertyService) Available() bool {
	return s.store != nil
}

func (s *SavedPropertyService) Save(ctx context.Context, userID string, propertyID int, property models.Property) (*models.SavedProperty, error) {
	if s.store == nil {
		return nil, models.ErrStoreUnavailable
	}

	entry := &models.SavedProperty{
		ID:         uuid.New(),
		UserID:     userID,
		PropertyID: propertyID,
		Property:   property,
		SavedAt:    time.Now().UTC(),
	}

	if err := s.store.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.logger.Info("Property saved",
		zap.String("user_id", userID),
		zap.Int("property_id", propertyID),
	)
	return entry, nil
}

// List returns the user's favorites ordered by recency. Store failures
// degrade to an empty list.
func (s *SavedPropertyService) List(ctx context.Context, userID string) ([]models.SavedProperty, error) {
	if s.store == nil {
		return []models.SavedProperty{}, models.ErrStoreUnavailable
	}

	entries, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("Listing saved properties failed", zap.Error(err))
		return []models.SavedProperty{}, models.ErrStoreUnavailable
	}
	if entries == nil {
		entries = []models.SavedProperty{}
	}
	return entries, nil
}

func (s *SavedPropertyService) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if s.store == nil {
		return models.ErrStoreUnavailable
	}
	return s.store.Delete(ctx, id, userID)
}

// IsSaved reports whether the user saved the property. Store failures
// degrade to false.
func (s *SavedPropertyService) IsSaved(ctx context.Context, userID string, propertyID int) (*models.SavedProperty, bool) {
	if s.store == nil {
		return nil, false
	}

	entry, err := s.store.GetByUserAndProperty(ctx, userID, propertyID)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			s.logger.Warn("Saved-property check failed", zap.Error(err))
		}
		return nil, false
	}
	return entry, true
}
