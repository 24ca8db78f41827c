package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/class-booking-service/internal/domain"
)

// ErrClassUnavailable signals that the class the booking targets is not
// approved, has no remaining seats, or no longer exists.
var ErrClassUnavailable = errors.New("class unavailable for booking")

// BookingRepository encapsulates booking persistence. Creation and deletion
// run inside a transaction with the seat counter on the classes table:
// seat-reserve plus insert is atomic, so concurrent bookings cannot race
// past capacity.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByStudent(ctx context.Context, email string) ([]domain.Booking, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

// Create reserves a seat and inserts the booking in one transaction. The
// conditional decrement succeeds only for an approved class with seats
// left; zero rows affected means the booking must be rejected.
func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const reserve = `
        UPDATE classes SET available_seats = available_seats - 1, updated_at=NOW()
        WHERE id=$1 AND status='approved' AND available_seats > 0`

	cmd, err := tx.Exec(ctx, reserve, booking.ClassID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrClassUnavailable
	}

	const insert = `
        INSERT INTO bookings (student_email, class_id, class_title, thumbnail_url, instructor_name, instructor_email, price)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at`

	if err := tx.QueryRow(ctx, insert,
		booking.StudentEmail,
		booking.ClassID,
		booking.ClassTitle,
		booking.ThumbnailURL,
		booking.InstructorName,
		booking.InstructorEmail,
		booking.Price,
	).Scan(&booking.ID, &booking.CreatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *bookingRepository) ListByStudent(ctx context.Context, email string) ([]domain.Booking, error) {
	const query = `
        SELECT id, student_email, class_id, class_title, thumbnail_url,
               instructor_name, instructor_email, price, created_at
        FROM bookings WHERE student_email=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.StudentEmail,
			&booking.ClassID,
			&booking.ClassTitle,
			&booking.ThumbnailURL,
			&booking.InstructorName,
			&booking.InstructorEmail,
			&booking.Price,
			&booking.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}

// Delete removes the booking and gives the seat back when the referenced
// class still exists. Returns false when the id was already gone.
func (r *bookingRepository) Delete(ctx context.Context, id string) (bool, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const remove = `DELETE FROM bookings WHERE id=$1 RETURNING class_id`

	var classID string
	if err := tx.QueryRow(ctx, remove, id).Scan(&classID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	const release = `
        UPDATE classes SET available_seats = available_seats + 1, updated_at=NOW()
        WHERE id=$1`

	if _, err := tx.Exec(ctx, release, classID); err != nil {
		return false, err
	}

	return true, tx.Commit(ctx)
}
