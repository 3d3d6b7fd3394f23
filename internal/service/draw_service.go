// Package service содержит бизнес-логику FairPlay10X: учётные записи, игроков,
// события, записи на события и жеребьёвку составов.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"fairplay10x/internal/draw"
	"fairplay10x/internal/model"
	"fairplay10x/internal/repository"
)

// DraftStore хранит черновики жеребьёвки.
type DraftStore interface {
	Get(ctx context.Context, eventID string) (model.Draw, error)
	Save(ctx context.Context, d model.Draw, expectedVersion int64) (model.Draw, error)
	Delete(ctx context.Context, eventID string) error
}

// AssignmentRepository хранит утверждённые составы.
type AssignmentRepository interface {
	ReplaceForEvent(ctx context.Context, eventID string, entries []model.TeamAssignment) error
	ListForEvent(ctx context.Context, eventID string) ([]model.TeamMember, []model.TeamAssignment, error)
}

// NotificationQueue ставит уведомления в очередь.
type NotificationQueue interface {
	Enqueue(ctx context.Context, items []model.Notification) error
}

// DrawView описывает жеребьёвку в том виде, в каком её видит пользователь.
type DrawView struct {
	EventID         string                `json:"event_id"`
	Status          model.DrawStatus      `json:"status"`
	Version         int64                 `json:"version"`
	TeamCount       int                   `json:"team_count"`
	Teams           []draw.PublicTeamView `json:"teams"`
	BalanceAchieved bool                  `json:"balance_achieved"`
	BalanceWarning  string                `json:"balance_warning,omitempty"`
	ConfirmedAt     *time.Time            `json:"confirmed_at,omitempty"`
}

// DrawService проводит жеребьёвку, ручные переносы и утверждение составов.
// Черновик живёт в DraftStore, утверждённые составы — в PostgreSQL.
type DrawService struct {
	tm            TransactionManager
	events        EventRepository
	signups       SignupRepository
	assignments   AssignmentRepository
	users         UserRepository
	notifications NotificationQueue
	drafts        DraftStore
	now           func() time.Time
}

// NewDrawService создаёт сервис жеребьёвки.
func NewDrawService(
	tm TransactionManager,
	events EventRepository,
	signups SignupRepository,
	assignments AssignmentRepository,
	users UserRepository,
	notifications NotificationQueue,
	drafts DraftStore,
) *DrawService {
	return &DrawService{
		tm:            tm,
		events:        events,
		signups:       signups,
		assignments:   assignments,
		users:         users,
		notifications: notifications,
		drafts:        drafts,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// GetDraw возвращает утверждённые составы, а если их нет, текущий черновик.
func (s *DrawService) GetDraw(ctx context.Context, eventID string, viewer model.Viewer) (DrawView, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return DrawView{}, err
	}

	if event.TeamsConfirmed() {
		d, err := s.confirmedDraw(ctx, event)
		if err != nil {
			return DrawView{}, err
		}
		return s.view(d, viewer), nil
	}

	d, err := s.drafts.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return DrawView{}, ErrNotFound("draw not found")
		}
		return DrawView{}, errInternal("failed to get draft", err)
	}
	return s.view(d, viewer), nil
}

// RunDraw проводит жеребьёвку среди подтверждённых записей и заменяет черновик.
// teamCount == 0 означает предпочтительное число команд события.
func (s *DrawService) RunDraw(ctx context.Context, eventID string, teamCount int, viewer model.Viewer) (DrawView, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return DrawView{}, err
	}
	if teamCount == 0 {
		teamCount = event.PreferredTeamCount
	}
	if teamCount < model.MinTeamCount || teamCount > model.MaxTeamCount {
		return DrawView{}, ErrBadRequest("team_count must be between 2 and 10")
	}
	if event.TeamsConfirmed() {
		return DrawView{}, ErrDomain("DRAW_CONFIRMED", "teams are already confirmed")
	}
	if event.Status != model.EventStatusActive {
		return DrawView{}, ErrDomain("EVENT_COMPLETED", "event is completed")
	}
	if event.CurrentSignupsCount < model.MinSignupsForDraw {
		return DrawView{}, ErrDomain("NOT_ENOUGH_SIGNUPS", "at least 4 signups are required to draw teams")
	}

	// Повторная жеребьёвка заменяет черновик, но не тот, что уже утверждается.
	var currentVersion int64
	current, err := s.drafts.Get(ctx, eventID)
	switch {
	case errors.Is(err, repository.ErrDraftNotFound):
	case err != nil:
		return DrawView{}, errInternal("failed to get draft", err)
	case current.IsConfirmed():
		return DrawView{}, ErrDomain("DRAW_CONFIRMED", "teams are already confirmed")
	default:
		currentVersion = current.Version
	}

	members, err := s.signups.ListConfirmedMembers(ctx, eventID)
	if err != nil {
		return DrawView{}, errInternal("failed to list confirmed signups", err)
	}
	teams, err := draw.Partition(members, teamCount, nil)
	if err != nil {
		return DrawView{}, mapDrawError(err)
	}

	now := s.now()
	saved, err := s.drafts.Save(ctx, model.Draw{
		EventID:         eventID,
		TeamCount:       teamCount,
		Status:          model.DrawStatusDraft,
		Teams:           teams,
		BalanceAchieved: draw.EvaluateBalance(teams),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, currentVersion)
	if err != nil {
		return DrawView{}, mapDraftError(err)
	}
	return s.view(saved, viewer), nil
}

// MovePlayer переносит игрока в другую команду. Если игрок уже в целевой команде,
// черновик не меняется и changed == false.
func (s *DrawService) MovePlayer(ctx context.Context, eventID, signupID string, targetTeam int, expectedVersion int64, viewer model.Viewer) (DrawView, bool, error) {
	d, err := s.loadDraft(ctx, eventID, expectedVersion)
	if err != nil {
		return DrawView{}, false, err
	}

	entries, changed, err := draw.Reassign(d.Teams, signupID, targetTeam)
	if err != nil {
		return DrawView{}, false, mapDrawError(err)
	}
	if !changed {
		return s.view(d, viewer), false, nil
	}

	saved, err := s.apply(ctx, d, entries)
	if err != nil {
		return DrawView{}, false, err
	}
	return s.view(saved, viewer), true, nil
}

// SaveAssignments полностью заменяет составы черновика переданным списком назначений.
func (s *DrawService) SaveAssignments(ctx context.Context, eventID string, entries []model.TeamAssignment, expectedVersion int64, viewer model.Viewer) (DrawView, error) {
	d, err := s.loadDraft(ctx, eventID, expectedVersion)
	if err != nil {
		return DrawView{}, err
	}
	saved, err := s.apply(ctx, d, entries)
	if err != nil {
		return DrawView{}, err
	}
	return s.view(saved, viewer), nil
}

// ConfirmTeams утверждает черновик. Сначала черновик помечается утверждённым в Redis
// (compare-and-set по версии), после чего переносы и повторная жеребьёвка отклоняются.
// Затем в одной транзакции под блокировкой события сверяется состав, сохраняются
// назначения, отмечается событие и ставятся уведомления игрокам. Утверждение необратимо.
func (s *DrawService) ConfirmTeams(ctx context.Context, eventID string, expectedVersion int64, viewer model.Viewer) (DrawView, error) {
	d, err := s.loadDraft(ctx, eventID, expectedVersion)
	if err != nil {
		return DrawView{}, err
	}

	members, err := s.signups.ListConfirmedMembers(ctx, eventID)
	if err != nil {
		return DrawView{}, errInternal("failed to list confirmed signups", err)
	}
	if !sameRoster(d.SignupIDs(), members) {
		return DrawView{}, errDrawStale()
	}

	confirmed := d
	if err := confirmed.Confirm(s.now()); err != nil {
		return DrawView{}, ErrDomain("DRAW_CONFIRMED", "teams are already confirmed")
	}
	locked, err := s.drafts.Save(ctx, confirmed, d.Version)
	if err != nil {
		return DrawView{}, mapDraftError(err)
	}

	err = s.tm.RunInTransaction(ctx, func(ctx context.Context) error {
		event, err := s.events.GetByIDForUpdate(ctx, eventID)
		if err != nil {
			if errors.Is(err, repository.ErrEventNotFound) {
				return ErrNotFound("event not found")
			}
			return errInternal("failed to lock event", err)
		}
		if event.TeamsConfirmed() {
			return ErrDomain("DRAW_CONFIRMED", "teams are already confirmed")
		}

		// Записи меняются под той же блокировкой события.
		members, err := s.signups.ListConfirmedMembers(ctx, eventID)
		if err != nil {
			return errInternal("failed to list confirmed signups", err)
		}
		if !sameRoster(locked.SignupIDs(), members) {
			return errDrawStale()
		}

		if err := s.assignments.ReplaceForEvent(ctx, eventID, locked.Assignments()); err != nil {
			return errInternal("failed to save assignments", err)
		}
		if err := s.events.MarkTeamsConfirmed(ctx, eventID, *locked.ConfirmedAt, locked.TeamCount); err != nil {
			if errors.Is(err, model.ErrDrawConfirmed) {
				return ErrDomain("DRAW_CONFIRMED", "teams are already confirmed")
			}
			return errInternal("failed to confirm teams", err)
		}
		return s.enqueueConfirmed(ctx, locked)
	})
	if err != nil {
		s.releaseDraft(ctx, d, locked.Version, err)
		return DrawView{}, err
	}

	// Утверждённые составы читаются из PostgreSQL; неудаление черновика лишь оставляет его до TTL.
	_ = s.drafts.Delete(ctx, eventID)

	return s.view(locked, viewer), nil
}

// releaseDraft снимает пометку об утверждении после неудачной транзакции.
// Если составы уже утверждены другим запросом, черновик больше не нужен.
// Ошибки записи игнорируются: повторная жеребьёвка перезапишет черновик.
func (s *DrawService) releaseDraft(ctx context.Context, d model.Draw, lockedVersion int64, cause error) {
	var appErr *AppError
	if errors.As(cause, &appErr) && appErr.Code == "DRAW_CONFIRMED" {
		_ = s.drafts.Delete(ctx, d.EventID)
		return
	}
	d.UpdatedAt = s.now()
	_, _ = s.drafts.Save(ctx, d, lockedVersion)
}

func errDrawStale() *AppError {
	return ErrDomain("DRAW_STALE", "signups changed since the draw, run the draw again")
}

type teamsConfirmedPayload struct {
	EventID       string          `json:"event_id"`
	EventName     string          `json:"event_name"`
	EventDatetime time.Time       `json:"event_datetime"`
	TeamNumber    int             `json:"team_number"`
	TeamColor     model.TeamColor `json:"team_color"`
}

func (s *DrawService) enqueueConfirmed(ctx context.Context, d model.Draw) error {
	event, err := s.events.GetByID(ctx, d.EventID)
	if err != nil {
		return errInternal("failed to get event", err)
	}

	teamOf := make(map[string]model.TeamViewModel)
	playerIDs := make([]string, 0)
	for _, t := range d.Teams {
		for _, p := range t.Players {
			teamOf[p.PlayerID] = t
			playerIDs = append(playerIDs, p.PlayerID)
		}
	}

	users, err := s.users.ListByPlayerIDs(ctx, playerIDs)
	if err != nil {
		return errInternal("failed to list users", err)
	}

	items := make([]model.Notification, 0, len(users))
	for _, u := range users {
		if u.PlayerID == nil {
			continue
		}
		t, ok := teamOf[*u.PlayerID]
		if !ok {
			continue
		}
		payload, err := json.Marshal(teamsConfirmedPayload{
			EventID:       event.ID,
			EventName:     event.Name,
			EventDatetime: event.EventDatetime,
			TeamNumber:    t.TeamNumber,
			TeamColor:     t.TeamColor,
		})
		if err != nil {
			return errInternal("failed to encode notification", err)
		}
		items = append(items, model.Notification{
			ID:      uuid.NewString(),
			UserID:  u.ID,
			EventID: event.ID,
			Kind:    model.NotificationTeamsConfirmed,
			Payload: payload,
		})
	}

	if err := s.notifications.Enqueue(ctx, items); err != nil {
		return errInternal("failed to enqueue notifications", err)
	}
	return nil
}

func (s *DrawService) getEvent(ctx context.Context, eventID string) (model.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return model.Event{}, ErrNotFound("event not found")
		}
		return model.Event{}, errInternal("failed to get event", err)
	}
	return event, nil
}

// loadDraft возвращает черновик, пригодный для изменения.
// expectedVersion == 0 отключает проверку версии клиента.
func (s *DrawService) loadDraft(ctx context.Context, eventID string, expectedVersion int64) (model.Draw, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return model.Draw{}, err
	}
	if event.TeamsConfirmed() {
		return model.Draw{}, ErrDomain("DRAW_CONFIRMED", "teams are already confirmed")
	}

	d, err := s.drafts.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrDraftNotFound) {
			return model.Draw{}, ErrNotFound("draw not found")
		}
		return model.Draw{}, errInternal("failed to get draft", err)
	}
	if d.IsConfirmed() {
		return model.Draw{}, ErrDomain("DRAW_CONFIRMED", "teams are already confirmed")
	}
	if expectedVersion != 0 && expectedVersion != d.Version {
		return model.Draw{}, ErrDomain("DRAW_VERSION_CONFLICT", "draw was changed by someone else")
	}
	return d, nil
}

func (s *DrawService) apply(ctx context.Context, d model.Draw, entries []model.TeamAssignment) (model.Draw, error) {
	teams, err := draw.ApplyAssignments(d.Teams, entries)
	if err != nil {
		return model.Draw{}, mapDrawError(err)
	}
	d.Teams = teams
	d.BalanceAchieved = draw.EvaluateBalance(teams)
	d.UpdatedAt = s.now()

	saved, err := s.drafts.Save(ctx, d, d.Version)
	if err != nil {
		return model.Draw{}, mapDraftError(err)
	}
	return saved, nil
}

func (s *DrawService) confirmedDraw(ctx context.Context, event model.Event) (model.Draw, error) {
	members, assignments, err := s.assignments.ListForEvent(ctx, event.ID)
	if err != nil {
		return model.Draw{}, errInternal("failed to list assignments", err)
	}

	teamCount := 0
	if event.ConfirmedTeamCount != nil {
		teamCount = *event.ConfirmedTeamCount
	} else {
		for _, a := range assignments {
			teamCount = max(teamCount, a.TeamNumber)
		}
	}

	teams, err := draw.BuildTeams(teamCount, members, assignments)
	if err != nil {
		return model.Draw{}, errInternal("stored assignments are inconsistent", err)
	}
	return model.Draw{
		EventID:         event.ID,
		TeamCount:       teamCount,
		Status:          model.DrawStatusConfirmed,
		Teams:           teams,
		BalanceAchieved: draw.EvaluateBalance(teams),
		CreatedAt:       *event.TeamsConfirmedAt,
		UpdatedAt:       *event.TeamsConfirmedAt,
		ConfirmedAt:     event.TeamsConfirmedAt,
	}, nil
}

func (s *DrawService) view(d model.Draw, viewer model.Viewer) DrawView {
	v := DrawView{
		EventID:         d.EventID,
		Status:          d.Status,
		Version:         d.Version,
		TeamCount:       d.TeamCount,
		Teams:           draw.Project(d.Teams, draw.CapabilitiesFor(viewer.Role)),
		BalanceAchieved: d.BalanceAchieved,
		ConfirmedAt:     d.ConfirmedAt,
	}
	if !d.BalanceAchieved {
		v.BalanceWarning = draw.BalanceWarning
	}
	return v
}

func sameRoster(signupIDs []string, members []model.TeamMember) bool {
	if len(signupIDs) != len(members) {
		return false
	}
	set := make(map[string]struct{}, len(members))
	for _, m := range members {
		set[m.SignupID] = struct{}{}
	}
	for _, id := range signupIDs {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func mapDrawError(err error) error {
	switch {
	case errors.Is(err, draw.ErrInvalidTeamCount):
		return ErrBadRequest("team_count must be between 2 and 10")
	case errors.Is(err, draw.ErrNotEnoughPlayers):
		return ErrDomain("NOT_ENOUGH_PLAYERS", "not enough confirmed players for the requested team count")
	case errors.Is(err, draw.ErrUnknownSignup):
		return ErrNotFound("signup is not part of the draw")
	case errors.Is(err, draw.ErrUnknownTeam),
		errors.Is(err, draw.ErrIncompleteAssignments),
		errors.Is(err, draw.ErrDuplicateAssignment),
		errors.Is(err, draw.ErrColorMismatch):
		return ErrBadRequest(err.Error())
	default:
		return errInternal("draw failed", err)
	}
}

func mapDraftError(err error) error {
	if errors.Is(err, repository.ErrVersionConflict) {
		return ErrDomain("DRAW_VERSION_CONFLICT", "draw was changed by someone else")
	}
	return errInternal("failed to save draft", err)
}
