package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fairplay10x/internal/model"
)

// DashboardUpcomingLimit — сколько ближайших событий показывать на главной.
const DashboardUpcomingLimit = 5

// DashboardService собирает сводку для главной страницы.
type DashboardService struct {
	events  EventRepository
	signups SignupRepository
	users   UserRepository
	players PlayerRepository
}

// NewDashboardService создаёт сервис сводки.
func NewDashboardService(events EventRepository, signups SignupRepository, users UserRepository, players PlayerRepository) *DashboardService {
	return &DashboardService{events: events, signups: signups, users: users, players: players}
}

// Summary выполняет чтения параллельно; ошибка любого из них отменяет остальные.
func (s *DashboardService) Summary(ctx context.Context, viewer model.Viewer) (model.DashboardSummary, error) {
	var summary model.DashboardSummary
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := s.events.List(gctx, model.EventFilter{
			Status:   model.EventStatusActive,
			Upcoming: true,
			Limit:    DashboardUpcomingLimit,
		})
		if err != nil {
			return errInternal("failed to list upcoming events", err)
		}
		summary.UpcomingEvents = events
		return nil
	})

	summary.MySignups = []model.EventSignup{}
	if viewer.PlayerID != "" {
		g.Go(func() error {
			signups, err := s.signups.ListActiveByPlayer(gctx, viewer.PlayerID)
			if err != nil {
				return errInternal("failed to list signups", err)
			}
			summary.MySignups = signups
			return nil
		})
	}

	if viewer.Role == model.RoleAdmin {
		g.Go(func() error {
			n, err := s.users.CountByStatus(gctx, model.UserStatusPending)
			if err != nil {
				return errInternal("failed to count pending users", err)
			}
			summary.PendingUsers = &n
			return nil
		})
	}

	g.Go(func() error {
		n, err := s.players.Count(gctx)
		if err != nil {
			return errInternal("failed to count players", err)
		}
		summary.PlayersCount = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.DashboardSummary{}, err
	}
	return summary, nil
}
