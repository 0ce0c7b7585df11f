package mariadb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/skundu42/doom-backend/internal/db"
	"github.com/skundu42/doom-backend/internal/logger"
	"github.com/skundu42/doom-backend/internal/model"
	"github.com/skundu42/doom-backend/internal/port"
)

// mysql error 1062: duplicate entry for a unique key
const errDuplicateEntry = 1062

type UserRepository struct {
	db *sql.DB
}

// compile-time check: *UserRepository must satisfy port.UserRepository
var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	logger.Debugf(ctx, "creating database record for user #%s as %q...", user.ID, user.Username)

	const query = `
      INSERT INTO users
        (id, auth_uid, username, display_name, avatar_url, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.AuthUID, user.Username,
		user.DisplayName, user.AvatarURL,
		user.CreatedAt, user.UpdatedAt,
	)
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == errDuplicateEntry {
		return port.ErrDuplicateUsername
	}
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id db.UUID) (*model.User, error) {
	logger.Debugf(ctx, "fetching user #%s from the database...", id)

	const query = `
      SELECT id, auth_uid, username, display_name, avatar_url, created_at, updated_at
      FROM users
      WHERE id = ?
    `
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByAuthUID(ctx context.Context, authUID string) (*model.User, error) {
	const query = `
      SELECT id, auth_uid, username, display_name, avatar_url, created_at, updated_at
      FROM users
      WHERE auth_uid = ?
    `
	return scanUser(r.db.QueryRowContext(ctx, query, authUID))
}

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID, &u.AuthUID, &u.Username,
		&u.DisplayName, &u.AvatarURL,
		&u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
