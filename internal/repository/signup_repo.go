package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fairplay10x/internal/model"

	"github.com/jackc/pgx/v5"
)

// SignupRepo реализует репозиторий записей на события.
type SignupRepo struct {
	db *Postgres
}

// NewSignupRepo создаёт новый экземпляр SignupRepo.
func NewSignupRepo(db *Postgres) *SignupRepo {
	return &SignupRepo{db: db}
}

const signupColumns = `s.id, s.event_id, s.player_id, s.status, s.signup_date, s.resignation_timestamp`

func scanSignup(row pgx.Row) (model.EventSignup, error) {
	var s model.EventSignup
	var status string
	if err := row.Scan(&s.ID, &s.EventID, &s.PlayerID, &status, &s.SignupDate, &s.ResignationTimestamp); err != nil {
		return model.EventSignup{}, err
	}
	s.Status = model.SignupStatus(status)
	return s, nil
}

// Create сохраняет запись. Если у игрока уже есть активная запись на событие, вернёт ErrSignupExists.
func (r *SignupRepo) Create(ctx context.Context, s model.EventSignup) (model.EventSignup, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
INSERT INTO event_signups AS s (id, event_id, player_id, status)
VALUES ($1, $2, $3, $4)
RETURNING `+signupColumns,
		s.ID, s.EventID, s.PlayerID, string(s.Status))

	created, err := scanSignup(row)
	if err != nil {
		if isUniqueViolation(err) {
			return model.EventSignup{}, ErrSignupExists
		}
		return model.EventSignup{}, fmt.Errorf("insert signup: %w", err)
	}
	return created, nil
}

// GetByID возвращает запись по идентификатору.
func (r *SignupRepo) GetByID(ctx context.Context, id string) (model.EventSignup, error) {
	q := r.db.GetQueryExecutor(ctx)
	s, err := scanSignup(q.QueryRow(ctx, `SELECT `+signupColumns+` FROM event_signups s WHERE s.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.EventSignup{}, ErrSignupNotFound
		}
		return model.EventSignup{}, fmt.Errorf("get signup: %w", err)
	}
	return s, nil
}

// ListByEvent возвращает записи на событие вместе с данными игроков.
func (r *SignupRepo) ListByEvent(ctx context.Context, eventID string) ([]model.EventSignup, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT `+signupColumns+`, `+prefixed("p", playerColumns)+`
FROM event_signups s
JOIN players p ON p.id = s.player_id
WHERE s.event_id = $1
ORDER BY s.signup_date`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query signups: %w", err)
	}
	defer rows.Close()

	res := make([]model.EventSignup, 0)
	for rows.Next() {
		var s model.EventSignup
		var p model.Player
		var status, position string
		if err := rows.Scan(&s.ID, &s.EventID, &s.PlayerID, &status, &s.SignupDate, &s.ResignationTimestamp,
			&p.ID, &p.FirstName, &p.LastName, &position, &p.SkillRate, &p.DateOfBirth, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt); err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		s.Status = model.SignupStatus(status)
		p.Position = model.Position(position)
		s.Player = &p
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// ListActiveByPlayer возвращает незакрытые записи игрока на предстоящие события.
func (r *SignupRepo) ListActiveByPlayer(ctx context.Context, playerID string) ([]model.EventSignup, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT `+signupColumns+`
FROM event_signups s
JOIN events e ON e.id = s.event_id
WHERE s.player_id = $1
  AND s.status <> 'withdrawn'
  AND e.deleted_at IS NULL
  AND e.event_datetime >= now()
ORDER BY e.event_datetime`, playerID)
	if err != nil {
		return nil, fmt.Errorf("query player signups: %w", err)
	}
	defer rows.Close()

	res := make([]model.EventSignup, 0)
	for rows.Next() {
		s, err := scanSignup(rows)
		if err != nil {
			return nil, fmt.Errorf("scan signup: %w", err)
		}
		res = append(res, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// UpdateStatus меняет статус записи; при отказе проставляет время отказа.
func (r *SignupRepo) UpdateStatus(ctx context.Context, id string, status model.SignupStatus, at time.Time) (model.EventSignup, error) {
	q := r.db.GetQueryExecutor(ctx)
	row := q.QueryRow(ctx, `
UPDATE event_signups AS s
SET status = $2,
    resignation_timestamp = CASE WHEN $2 = 'withdrawn' THEN $3::timestamptz ELSE NULL END
WHERE s.id = $1
RETURNING `+signupColumns, id, string(status), at)

	s, err := scanSignup(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.EventSignup{}, ErrSignupNotFound
		}
		return model.EventSignup{}, fmt.Errorf("update signup: %w", err)
	}
	return s, nil
}

// ListConfirmedMembers возвращает подтверждённых игроков события в виде участников жеребьёвки.
func (r *SignupRepo) ListConfirmedMembers(ctx context.Context, eventID string) ([]model.TeamMember, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT s.id, p.id, p.first_name, p.last_name, p.position, p.skill_rate
FROM event_signups s
JOIN players p ON p.id = s.player_id
WHERE s.event_id = $1 AND s.status = 'confirmed' AND p.deleted_at IS NULL
ORDER BY s.signup_date`, eventID)
	if err != nil {
		return nil, fmt.Errorf("query confirmed members: %w", err)
	}
	defer rows.Close()

	res := make([]model.TeamMember, 0)
	for rows.Next() {
		var m model.TeamMember
		var position string
		if err := rows.Scan(&m.SignupID, &m.PlayerID, &m.FirstName, &m.LastName, &position, &m.SkillRate); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.Position = model.Position(position)
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}
