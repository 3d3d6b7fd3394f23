package repository

import (
	"context"
	"fmt"
	"strings"

	"fairplay10x/internal/model"

	"github.com/jackc/pgx/v5"
)

// AssignmentRepo хранит утверждённые составы событий.
type AssignmentRepo struct {
	db *Postgres
}

// NewAssignmentRepo создаёт новый экземпляр AssignmentRepo.
func NewAssignmentRepo(db *Postgres) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

// ReplaceForEvent удаляет прежние назначения события и записывает новый полный список.
// Вызывать внутри транзакции, чтобы замена была атомарной.
func (r *AssignmentRepo) ReplaceForEvent(ctx context.Context, eventID string, entries []model.TeamAssignment) error {
	q := r.db.GetQueryExecutor(ctx)

	if _, err := q.Exec(ctx, `DELETE FROM team_assignments WHERE event_id = $1`, eventID); err != nil {
		return fmt.Errorf("delete assignments: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(`
INSERT INTO team_assignments (signup_id, event_id, team_number, team_color)
VALUES ($1, $2, $3, $4)
`, e.SignupID, eventID, e.TeamNumber, string(e.TeamColor))
	}
	br := q.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return fmt.Errorf("insert assignments: %w", err)
	}
	return nil
}

// ListForEvent возвращает участников утверждённых составов и их назначения.
func (r *AssignmentRepo) ListForEvent(ctx context.Context, eventID string) ([]model.TeamMember, []model.TeamAssignment, error) {
	q := r.db.GetQueryExecutor(ctx)
	rows, err := q.Query(ctx, `
SELECT s.id, p.id, p.first_name, p.last_name, p.position, p.skill_rate, a.team_number, a.team_color
FROM team_assignments a
JOIN event_signups s ON s.id = a.signup_id
JOIN players p ON p.id = s.player_id
WHERE a.event_id = $1
ORDER BY a.team_number`, eventID)
	if err != nil {
		return nil, nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	members := make([]model.TeamMember, 0)
	assignments := make([]model.TeamAssignment, 0)
	for rows.Next() {
		var m model.TeamMember
		var a model.TeamAssignment
		var position, color string
		if err := rows.Scan(&m.SignupID, &m.PlayerID, &m.FirstName, &m.LastName, &position, &m.SkillRate, &a.TeamNumber, &color); err != nil {
			return nil, nil, fmt.Errorf("scan assignment: %w", err)
		}
		m.Position = model.Position(position)
		a.SignupID = m.SignupID
		a.TeamColor = model.TeamColor(color)
		members = append(members, m)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("rows error: %w", err)
	}
	return members, assignments, nil
}

// prefixed добавляет псевдоним таблицы к списку колонок.
func prefixed(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, c := range parts {
		parts[i] = alias + "." + strings.TrimSpace(c)
	}
	return strings.Join(parts, ", ")
}
