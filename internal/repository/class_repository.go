package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/class-booking-service/internal/domain"
)

// ClassRepository encapsulates class persistence.
type ClassRepository interface {
	Create(ctx context.Context, class *domain.Class) error
	UpdateContent(ctx context.Context, id string, content ClassContent) (int64, error)
	UpdateStatus(ctx context.Context, id string, status domain.ClassStatus, feedback *string) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.Class, error)
	List(ctx context.Context) ([]domain.Class, error)
	ListByStatus(ctx context.Context, status domain.ClassStatus, limit int) ([]domain.Class, error)
}

// ClassContent carries the instructor-editable fields. Status is
// deliberately absent; only UpdateStatus touches it.
type ClassContent struct {
	Title          string
	ThumbnailURL   string
	AvailableSeats int32
	Price          float64
}

type classRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository instantiates repository.
func NewClassRepository(pool *pgxpool.Pool) ClassRepository {
	return &classRepository{pool: pool}
}

func (r *classRepository) Create(ctx context.Context, class *domain.Class) error {
	const query = `
        INSERT INTO classes (instructor_name, instructor_email, title, thumbnail_url, available_seats, price, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		class.InstructorName,
		class.InstructorEmail,
		class.Title,
		class.ThumbnailURL,
		class.AvailableSeats,
		class.Price,
		class.Status,
	).Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

func (r *classRepository) UpdateContent(ctx context.Context, id string, content ClassContent) (int64, error) {
	const query = `
        UPDATE classes SET title=$1, thumbnail_url=$2, available_seats=$3, price=$4, updated_at=NOW()
        WHERE id=$5`

	cmd, err := r.pool.Exec(ctx, query,
		content.Title,
		content.ThumbnailURL,
		content.AvailableSeats,
		content.Price,
		id,
	)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

// UpdateStatus stores the new status together with its feedback. Passing a
// nil feedback clears whatever was stored, so feedback survives only on
// denied records.
func (r *classRepository) UpdateStatus(ctx context.Context, id string, status domain.ClassStatus, feedback *string) (int64, error) {
	const query = `
        UPDATE classes SET status=$1, feedback=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := r.pool.Exec(ctx, query, status, feedback, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *classRepository) GetByID(ctx context.Context, id string) (*domain.Class, error) {
	const query = `
        SELECT id, instructor_name, instructor_email, title, thumbnail_url,
               available_seats, price, status, feedback, created_at, updated_at
        FROM classes WHERE id=$1`

	var class domain.Class
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&class.ID,
		&class.InstructorName,
		&class.InstructorEmail,
		&class.Title,
		&class.ThumbnailURL,
		&class.AvailableSeats,
		&class.Price,
		&class.Status,
		&class.Feedback,
		&class.CreatedAt,
		&class.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) List(ctx context.Context) ([]domain.Class, error) {
	const query = `
        SELECT id, instructor_name, instructor_email, title, thumbnail_url,
               available_seats, price, status, feedback, created_at, updated_at
        FROM classes ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClasses(rows)
}

// ListByStatus returns classes in the given status, most recently created
// first. A limit of zero means no limit.
func (r *classRepository) ListByStatus(ctx context.Context, status domain.ClassStatus, limit int) ([]domain.Class, error) {
	const base = `
        SELECT id, instructor_name, instructor_email, title, thumbnail_url,
               available_seats, price, status, feedback, created_at, updated_at
        FROM classes WHERE status=$1 ORDER BY created_at DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.pool.Query(ctx, base+` LIMIT $2`, status, limit)
	} else {
		rows, err = r.pool.Query(ctx, base, status)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanClasses(rows)
}

func scanClasses(rows pgx.Rows) ([]domain.Class, error) {
	var result []domain.Class
	for rows.Next() {
		var class domain.Class
		if err := rows.Scan(
			&class.ID,
			&class.InstructorName,
			&class.InstructorEmail,
			&class.Title,
			&class.ThumbnailURL,
			&class.AvailableSeats,
			&class.Price,
			&class.Status,
			&class.Feedback,
			&class.CreatedAt,
			&class.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, class)
	}
	return result, rows.Err()
}
