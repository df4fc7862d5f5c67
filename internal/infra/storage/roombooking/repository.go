package roombooking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/viamente/booking-service/internal/domain"
	"github.com/viamente/booking-service/pkg/dbmetrics"
	"github.com/viamente/booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"room_id",
	"psychologist_id",
	"appointment_id",
	"booking_date",
	"start_time",
	"end_time",
	"purpose",
	"created_at",
}

// Repository Postgres-backed room booking storage.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a room booking repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a room booking, joining an active transaction when
// the context carries one.
func (r *Repository) Create(ctx context.Context, booking *domain.RoomBooking) (*domain.RoomBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("room_bookings").
		Columns(
			"id",
			"room_id",
			"psychologist_id",
			"appointment_id",
			"booking_date",
			"start_time",
			"end_time",
			"purpose",
		).
		Values(
			booking.ID,
			booking.RoomID,
			booking.PsychologistID,
			booking.AppointmentID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.Purpose,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// ListByRoomAndDate returns the room's bookings on a single date
// ordered by start time. Inside a transaction the rows are locked with
// FOR UPDATE so the no-overlap check holds until commit.
func (r *Repository) ListByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.RoomBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("room_bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"booking_date": date}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// ListByRoomAndDateRange returns bookings in the inclusive date range,
// ordered chronologically. Used by the availability reads.
func (r *Repository) ListByRoomAndDateRange(ctx context.Context, roomID int64, from, to time.Time) ([]*domain.RoomBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("room_bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		OrderBy("booking_date ASC, start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomAndDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomAndDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Delete removes a room booking.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("room_bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// DeleteByAppointmentID removes the companion booking of an
// appointment. Zero rows is not an error here, the companion may have
// been removed already.
func (r *Repository) DeleteByAppointmentID(ctx context.Context, appointmentID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("room_bookings").
		Where(squirrel.Eq{"appointment_id": appointmentID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByAppointmentID - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteByAppointmentID - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

func scanBookings(rows *sql.Rows) ([]*domain.RoomBooking, error) {
	bookings := make([]*domain.RoomBooking, 0)

	for rows.Next() {
		var booking domain.RoomBooking
		var createdAt sql.NullTime

		err := rows.Scan(
			&booking.ID,
			&booking.RoomID,
			&booking.PsychologistID,
			&booking.AppointmentID,
			&booking.Date,
			&booking.StartTime,
			&booking.EndTime,
			&booking.Purpose,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		booking.CreatedAt = createdAt.Time
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
