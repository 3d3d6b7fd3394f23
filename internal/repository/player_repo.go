package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fairplay10x/internal/model"

	"github.com/jackc/pgx/v5"
)

const playerColumns = `id, first_name, last_name, position, skill_rate, date_of_birth, created_at, updated_at, deleted_at`

// PlayerRepo реализует репозиторий игроков на базе PostgreSQL.
type PlayerRepo struct {
	db *Postgres
}

// NewPlayerRepo создаёт новый экземпляр PlayerRepo.
func NewPlayerRepo(db *Postgres) *PlayerRepo {
	return &PlayerRepo{db: db}
}

func scanPlayer(row pgx.Row) (model.Player, error) {
	var p model.Player
	var position string
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &position, &p.SkillRate, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
		return model.Player{}, err
	}
	p.Position = model.Position(position)
	return p, nil
}

// Create сохраняет нового игрока.
func (r *PlayerRepo) Create(ctx context.Context, p model.Player) (model.Player, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO players (id, first_name, last_name, position, skill_rate, date_of_birth)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+playerColumns,
		p.ID, p.FirstName, p.LastName, string(p.Position), p.SkillRate, p.DateOfBirth)

	created, err := scanPlayer(row)
	if err != nil {
		return model.Player{}, fmt.Errorf("insert player: %w", err)
	}
	return created, nil
}

// GetByID возвращает неудалённого игрока. Если игрока нет, возвращает ErrPlayerNotFound.
func (r *PlayerRepo) GetByID(ctx context.Context, id string) (model.Player, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1 AND deleted_at IS NULL`, id)

	p, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, ErrPlayerNotFound
		}
		return model.Player{}, fmt.Errorf("get player: %w", err)
	}
	return p, nil
}

// List возвращает неудалённых игроков, отсортированных по фамилии и имени.
func (r *PlayerRepo) List(ctx context.Context, f model.PlayerFilter) ([]model.Player, error) {
	sql := `SELECT ` + playerColumns + ` FROM players WHERE deleted_at IS NULL`
	args := []any{}
	if f.Position != "" {
		args = append(args, string(f.Position))
		sql += fmt.Sprintf(" AND position = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		sql += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args))
	}
	sql += " ORDER BY last_name, first_name"
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	res := make([]model.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// Update обновляет данные игрока и возвращает актуальное состояние.
func (r *PlayerRepo) Update(ctx context.Context, p model.Player) (model.Player, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
UPDATE players
SET first_name = $2,
    last_name = $3,
    position = $4,
    skill_rate = $5,
    date_of_birth = $6,
    updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING `+playerColumns,
		p.ID, p.FirstName, p.LastName, string(p.Position), p.SkillRate, p.DateOfBirth)

	updated, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Player{}, ErrPlayerNotFound
		}
		return model.Player{}, fmt.Errorf("update player: %w", err)
	}
	return updated, nil
}

// SoftDelete помечает игрока удалённым.
func (r *PlayerRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `UPDATE players SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlayerNotFound
	}
	return nil
}

// Count возвращает число неудалённых игроков.
func (r *PlayerRepo) Count(ctx context.Context) (int, error) {
	q := r.db.GetQueryExecutor(ctx)
	var n int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM players WHERE deleted_at IS NULL`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count players: %w", err)
	}
	return n, nil
}
