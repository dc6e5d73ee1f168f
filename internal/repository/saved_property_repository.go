package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"estatescout/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const uniqueViolationCode = "23505"

type SavedPropertyRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewSavedPropertyRepository(db *pgxpool.Pool, logger *zap.Logger) *SavedPropertyRepository {
	return &SavedPropertyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SavedPropertyRepository) Create(ctx context.Context, entry *models.SavedProperty) error {
	snapshot, err := json.Marshal(entry.Property)
	if err != nil {
		return fmt.Errorf("failed to encode property snapshot: %w", err)
	}

	query := squirrel.Insert("saved_properties").
		Columns("id", "user_id", "property_id", "property", "saved_at").
		Values(entry.ID, entry.UserID, entry.PropertyID, snapshot, entry.SavedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return models.ErrAlreadySaved
		}
		return err
	}

	return nil
}

func (r *SavedPropertyRepository) ListByUser(ctx context.Context, userID string) ([]models.SavedProperty, error) {
	query := squirrel.Select("id", "user_id", "property_id", "property", "saved_at").
		From("saved_properties").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("saved_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SavedProperty
	for rows.Next() {
		entry, err := scanSavedProperty(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}

// Delete removes an entry owned by userID. A mismatching owner looks the same
// as a missing row: ErrNotFound.
func (r *SavedPropertyRepository) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	query := squirrel.Delete("saved_properties").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func (r *SavedPropertyRepository) GetByUserAndProperty(ctx context.Context, userID string, propertyID int) (*models.SavedProperty, error) {
	query := squirrel.Select("id", "user_id", "property_id", "property", "saved_at").
		From("saved_properties").
		Where(squirrel.Eq{"user_id": userID, "property_id": propertyID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	row := r.db.QueryRow(ctx, sql, args...)
	entry, err := scanSavedProperty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	return entry, nil
}

func scanSavedProperty(row pgx.Row) (*models.SavedProperty, error) {
	var entry models.SavedProperty
	var snapshot []byte

	if err := row.Scan(&entry.ID, &entry.UserID, &entry.PropertyID, &snapshot, &entry.SavedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(snapshot, &entry.Property); err != nil {
		return nil, fmt.Errorf("failed to decode property snapshot: %w", err)
	}

	return &entry, nil
}

// Schema is the saved-properties DDL applied by cmd/seed. The unique index on
// (user_id, property_id) is what arbitrates concurrent duplicate saves.
const Schema = `
CREATE TABLE IF NOT EXISTS saved_properties (
    id          UUID PRIMARY KEY,
    user_id     TEXT NOT NULL,
    property_id INTEGER NOT NULL,
    property    JSONB NOT NULL,
    saved_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS saved_properties_user_property_idx
    ON saved_properties (user_id, property_id);
CREATE INDEX IF NOT EXISTS saved_properties_user_saved_at_idx
    ON saved_properties (user_id, saved_at DESC);
`

// EnsureSchema creates the saved_properties table and its indexes.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, Schema)
	return err
}

