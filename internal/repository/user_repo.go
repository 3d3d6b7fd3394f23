package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fairplay10x/internal/model"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, email, password_hash, first_name, last_name, role, status, player_id, created_at, deleted_at`

// UserRepo реализует репозиторий пользователей на базе PostgreSQL.
type UserRepo struct {
	db *Postgres
}

// NewUserRepo создаёт новый экземпляр UserRepo c переданным подключением к PostgreSQL.
func NewUserRepo(db *Postgres) *UserRepo {
	return &UserRepo{db: db}
}

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	var role, status string
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &role, &status, &u.PlayerID, &u.CreatedAt, &u.DeletedAt); err != nil {
		return model.User{}, err
	}
	u.Role = model.Role(role)
	u.Status = model.UserStatus(status)
	return u, nil
}

// Create сохраняет нового пользователя. При занятом email вернёт ErrEmailTaken.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO users (id, email, password_hash, first_name, last_name, role, status, player_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+userColumns,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, string(u.Role), string(u.Status), u.PlayerID)

	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("insert user: %w", err)
	}
	return created, nil
}

// GetByID возвращает неудалённого пользователя. Если его нет, возвращает ErrUserNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 AND deleted_at IS NULL`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByEmail ищет пользователя по email без учёта регистра.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1) AND deleted_at IS NULL`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

// List возвращает пользователей; status фильтрует по статусу, если не пустой.
func (r *UserRepo) List(ctx context.Context, status model.UserStatus) ([]model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL`
	args := []any{}
	if status != "" {
		args = append(args, string(status))
		sql += ` AND status = $1`
	}
	sql += ` ORDER BY created_at`

	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return users, nil
}

// CountByStatus возвращает число неудалённых пользователей с указанным статусом.
func (r *UserRepo) CountByStatus(ctx context.Context, status model.UserStatus) (int, error) {
	q := r.db.GetQueryExecutor(ctx)
	var n int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE status = $1 AND deleted_at IS NULL`, string(status)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// SetStatus меняет статус пользователя.
func (r *UserRepo) SetStatus(ctx context.Context, id string, status model.UserStatus) (model.User, error) {
	return r.updateOne(ctx, `UPDATE users SET status = $2 WHERE id = $1 AND deleted_at IS NULL RETURNING `+userColumns, id, string(status))
}

// SetRole меняет роль пользователя.
func (r *UserRepo) SetRole(ctx context.Context, id string, role model.Role) (model.User, error) {
	return r.updateOne(ctx, `UPDATE users SET role = $2 WHERE id = $1 AND deleted_at IS NULL RETURNING `+userColumns, id, string(role))
}

// SetPlayer привязывает пользователя к игроку (nil отвязывает).
func (r *UserRepo) SetPlayer(ctx context.Context, id string, playerID *string) (model.User, error) {
	return r.updateOne(ctx, `UPDATE users SET player_id = $2 WHERE id = $1 AND deleted_at IS NULL RETURNING `+userColumns, id, playerID)
}

func (r *UserRepo) updateOne(ctx context.Context, sql string, args ...any) (model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	u, err := scanUser(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// SoftDelete помечает пользователя удалённым.
func (r *UserRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `UPDATE users SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListByPlayerIDs возвращает пользователей, привязанных к указанным игрокам.
func (r *UserRepo) ListByPlayerIDs(ctx context.Context, playerIDs []string) ([]model.User, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM users WHERE player_id = ANY($1::uuid[]) AND deleted_at IS NULL`, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("query users by players: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
