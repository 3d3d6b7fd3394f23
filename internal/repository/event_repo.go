package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fairplay10x/internal/model"

	"github.com/jackc/pgx/v5"
)

const eventColumns = `id, name, slug, location, event_datetime, max_places, current_signups_count,
       preferred_team_count, status, organizer_id, teams_confirmed_at, confirmed_team_count,
       created_at, updated_at, deleted_at`

// EventRepo реализует репозиторий событий на базе PostgreSQL.
type EventRepo struct {
	db *Postgres
}

// NewEventRepo создаёт новый экземпляр EventRepo.
func NewEventRepo(db *Postgres) *EventRepo {
	return &EventRepo{db: db}
}

func scanEvent(row pgx.Row) (model.Event, error) {
	var e model.Event
	var status string
	err := row.Scan(&e.ID, &e.Name, &e.Slug, &e.Location, &e.EventDatetime, &e.MaxPlaces, &e.CurrentSignupsCount,
		&e.PreferredTeamCount, &status, &e.OrganizerID, &e.TeamsConfirmedAt, &e.ConfirmedTeamCount,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt)
	if err != nil {
		return model.Event{}, err
	}
	e.Status = model.EventStatus(status)
	return e, nil
}

// Create сохраняет новое событие.
func (r *EventRepo) Create(ctx context.Context, e model.Event) (model.Event, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO events (id, name, slug, location, event_datetime, max_places, preferred_team_count, status, organizer_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING `+eventColumns,
		e.ID, e.Name, e.Slug, e.Location, e.EventDatetime, e.MaxPlaces, e.PreferredTeamCount, string(e.Status), e.OrganizerID)

	created, err := scanEvent(row)
	if err != nil {
		return model.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return created, nil
}

// GetByID возвращает неудалённое событие. Если события нет, возвращает ErrEventNotFound.
func (r *EventRepo) GetByID(ctx context.Context, id string) (model.Event, error) {
	return r.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 AND deleted_at IS NULL`, id)
}

// GetByIDForUpdate читает событие с блокировкой строки до конца транзакции.
func (r *EventRepo) GetByIDForUpdate(ctx context.Context, id string) (model.Event, error) {
	return r.getOne(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 AND deleted_at IS NULL FOR UPDATE`, id)
}

func (r *EventRepo) getOne(ctx context.Context, sql string, args ...any) (model.Event, error) {
	q := r.db.GetQueryExecutor(ctx)
	e, err := scanEvent(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Event{}, ErrEventNotFound
		}
		return model.Event{}, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

// List возвращает события, отсортированные по дате проведения.
func (r *EventRepo) List(ctx context.Context, f model.EventFilter) ([]model.Event, error) {
	sql := `SELECT ` + eventColumns + ` FROM events WHERE deleted_at IS NULL`
	args := []any{}
	if f.Status != "" {
		args = append(args, string(f.Status))
		sql += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if f.Upcoming {
		sql += " AND event_datetime >= now()"
	}
	sql += " ORDER BY event_datetime"
	if f.Limit > 0 {
		args = append(args, f.Limit, f.Offset)
		sql += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	}

	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	res := make([]model.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// Update обновляет редактируемые поля события.
func (r *EventRepo) Update(ctx context.Context, e model.Event) (model.Event, error) {
	return r.getOne(ctx, `
UPDATE events
SET name = $2,
    location = $3,
    event_datetime = $4,
    max_places = $5,
    preferred_team_count = $6,
    updated_at = now()
WHERE id = $1 AND deleted_at IS NULL
RETURNING `+eventColumns,
		e.ID, e.Name, e.Location, e.EventDatetime, e.MaxPlaces, e.PreferredTeamCount)
}

// SoftDelete помечает событие удалённым.
func (r *EventRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `UPDATE events SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// AdjustSignupsCount изменяет счётчик записей на delta.
func (r *EventRepo) AdjustSignupsCount(ctx context.Context, id string, delta int) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `
UPDATE events
SET current_signups_count = GREATEST(current_signups_count + $2, 0),
    updated_at = now()
WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("adjust signups count: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

// MarkTeamsConfirmed фиксирует утверждение составов.
func (r *EventRepo) MarkTeamsConfirmed(ctx context.Context, id string, at time.Time, teamCount int) error {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `
UPDATE events
SET teams_confirmed_at = $2,
    confirmed_team_count = $3,
    updated_at = now()
WHERE id = $1 AND teams_confirmed_at IS NULL`, id, at, teamCount)
	if err != nil {
		return fmt.Errorf("mark teams confirmed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDrawConfirmed
	}
	return nil
}

// CompletePast переводит в completed активные события, время которых прошло.
func (r *EventRepo) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	q := r.db.GetQueryExecutor(ctx)
	tag, err := q.Exec(ctx, `
UPDATE events
SET status = 'completed',
    updated_at = now()
WHERE status = 'active' AND event_datetime < $1 AND deleted_at IS NULL`, now)
	if err != nil {
		return 0, fmt.Errorf("complete past events: %w", err)
	}
	return tag.RowsAffected(), nil
}
