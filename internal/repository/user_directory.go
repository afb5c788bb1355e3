package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/account-service/internal/domain"
)

// ErrDuplicateEmail reports a create or patch that would reuse an email.
var ErrDuplicateEmail = errors.New("email already in use")

// UserPatch carries the optional fields of a partial update. Nil fields keep
// their stored value.
type UserPatch struct {
	Username     *string
	Email        *string
	PasswordHash *string
	RoleID       *int32
	StatusID     *int32
}

// UserDirectory is the persistence collaborator holding identities,
// credential hashes, roles and statuses. Lookups that match nothing return
// pgx.ErrNoRows.
type UserDirectory interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id domain.Identity) (*domain.User, error)
	UpdateFields(ctx context.Context, id domain.Identity, patch UserPatch) (int64, error)
	List(ctx context.Context, limit int) ([]domain.User, error)
}

type userDirectory struct {
	pool *pgxpool.Pool
}

// NewUserDirectory returns a Postgres-backed implementation.
func NewUserDirectory(pool *pgxpool.Pool) UserDirectory {
	return &userDirectory{pool: pool}
}

const userColumns = `
        users.id, users.username, users.email, users.password_hash,
        roles.role_name, account_status.status_name,
        users.created_at, users.updated_at`

func (r *userDirectory) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, email, password_hash, role_id, status_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		domain.RoleID(string(user.Role)),
		domain.StatusID(string(user.Status)),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (r *userDirectory) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
        SELECT` + userColumns + `
        FROM users
        INNER JOIN roles ON users.role_id = roles.id
        INNER JOIN account_status ON users.status_id = account_status.id
        WHERE users.email = $1`

	return r.scanOne(ctx, query, email)
}

func (r *userDirectory) FindByID(ctx context.Context, id domain.Identity) (*domain.User, error) {
	const query = `
        SELECT` + userColumns + `
        FROM users
        INNER JOIN roles ON users.role_id = roles.id
        INNER JOIN account_status ON users.status_id = account_status.id
        WHERE users.id = $1`

	return r.scanOne(ctx, query, int64(id))
}

func (r *userDirectory) UpdateFields(ctx context.Context, id domain.Identity, patch UserPatch) (int64, error) {
	const query = `
        UPDATE users SET
            username = COALESCE($1, username),
            email = COALESCE($2, email),
            password_hash = COALESCE($3, password_hash),
            role_id = COALESCE($4, role_id),
            status_id = COALESCE($5, status_id),
            updated_at = NOW()
        WHERE id = $6`

	cmd, err := r.pool.Exec(ctx, query,
		patch.Username,
		patch.Email,
		patch.PasswordHash,
		patch.RoleID,
		patch.StatusID,
		int64(id),
	)
	if isUniqueViolation(err) {
		return 0, ErrDuplicateEmail
	}
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *userDirectory) List(ctx context.Context, limit int) ([]domain.User, error) {
	const query = `
        SELECT` + userColumns + `
        FROM users
        INNER JOIN roles ON users.role_id = roles.id
        INNER JOIN account_status ON users.status_id = account_status.id
        ORDER BY users.id ASC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
			&user.Status,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userDirectory) scanOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
