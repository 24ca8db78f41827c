package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/class-booking-service/internal/domain"
)

// UserRepository defines persistence access for the user directory.
type UserRepository interface {
	CreateIfAbsent(ctx context.Context, user *domain.User) (bool, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (int64, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	ListByRole(ctx context.Context, role domain.Role, limit int) ([]domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// CreateIfAbsent inserts the user unless a record with the same email
// already exists. The conflict clause makes the idempotency check and the
// insert a single atomic statement. Returns false without mutating anything
// when the email is taken.
func (r *userRepository) CreateIfAbsent(ctx context.Context, user *domain.User) (bool, error) {
	const query = `
        INSERT INTO users (name, email, photo_url, role)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (email) DO NOTHING
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PhotoURL,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateRole overwrites the role for the record with that id and reports the
// modified count.
func (r *userRepository) UpdateRole(ctx context.Context, id string, role domain.Role) (int64, error) {
	const query = `UPDATE users SET role=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, role, id)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT id, name, email, photo_url, role, created_at, updated_at
        FROM users WHERE email=$1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PhotoURL,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, name, email, photo_url, role, created_at, updated_at
        FROM users ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

// ListByRole returns users holding the given role, newest first. A limit of
// zero means no limit.
func (r *userRepository) ListByRole(ctx context.Context, role domain.Role, limit int) ([]domain.User, error) {
	const base = `
        SELECT id, name, email, photo_url, role, created_at, updated_at
        FROM users WHERE role=$1 ORDER BY created_at DESC`

	var (
		rows pgx.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.pool.Query(ctx, base+` LIMIT $2`, role, limit)
	} else {
		rows, err = r.pool.Query(ctx, base, role)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PhotoURL,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}
