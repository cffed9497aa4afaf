package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/JohnMutemi/WritersHub-sub000/internal/domain/errors"
	"github.com/JohnMutemi/WritersHub-sub000/internal/domain/model"
)

const userColumns = `id, username, password_hash, email, full_name, role, bio, profile_image, balance, approval_status, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FullName, &u.Role,
		&u.Bio, &u.ProfileImage, &u.Balance, &u.ApprovalStatus, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (username, password_hash, email, full_name, role, bio, profile_image, approval_status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING id, balance, created_at`
	stored := *user
	err := r.storage.pool.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Email, user.FullName,
		user.Role, user.Bio, user.ProfileImage, user.ApprovalStatus,
	).Scan(&stored.ID, &stored.Balance, &stored.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &stored, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) ListWriters(ctx context.Context, status model.ApprovalStatus) ([]model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE role=$1 AND approval_status=$2 ORDER BY created_at`
	rows, err := r.storage.pool.Query(ctx, query, model.RoleWriter, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Email, &u.FullName, &u.Role,
			&u.Bio, &u.ProfileImage, &u.Balance, &u.ApprovalStatus, &u.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) SetApproval(ctx context.Context, writerID int64, status model.ApprovalStatus) error {
	const query = `UPDATE users SET approval_status=$1 WHERE id=$2 AND role=$3`
	tag, err := r.storage.pool.Exec(ctx, query, status, writerID, model.RoleWriter)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
