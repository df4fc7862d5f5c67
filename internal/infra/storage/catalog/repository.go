package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/pkg/dbmetrics"
	"github.com/viamente/booking-service/pkg/psqlbuilder"
)

// Repository read-only access to rooms and psychologists. Reference
// data, never mutated by the booking flow.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a catalog repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRoom fetches a room by ID.
func (r *Repository) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"capacity",
		"has_whiteboard",
		"has_video_call",
		"is_accessible",
		"floor_area",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HasWhiteboard,
		&room.HasVideoCall,
		&room.IsAccessible,
		&room.FloorArea,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoom - scan room: %v", ErrScanRow, err)
	}

	return &room, nil
}

// GetPsychologist fetches a psychologist by ID.
func (r *Repository) GetPsychologist(ctx context.Context, id int64) (*domain.Psychologist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"full_name",
		"specialization",
		"bio",
		"hourly_rate",
	).
		From("psychologists").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetPsychologist - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Psychologist
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.UserID,
		&p.FullName,
		&p.Specialization,
		&p.Bio,
		&p.HourlyRate,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPsychologistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetPsychologist - scan psychologist: %v", ErrScanRow, err)
	}

	return &p, nil
}
