package impl

import (
	"context"
	"time"

	"zumap/internal/usecase"
	"zumap/internal/util"
)

type statusService struct {
	feed      usecase.DropFeed
	startedAt time.Time
	now       func() time.Time
}

// NewStatusService creates a new status service instance
func NewStatusService(feed usecase.DropFeed) usecase.StatusUsecase {
	return &statusService{
		feed:      feed,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

func (s *statusService) Status(ctx context.Context) (*usecase.StatusReport, error) {
	state := s.feed.State()

	return &usecase.StatusReport{
		Network:     state.Network,
		Mode:        state.Mode,
		Drops:       state.Drops,
		RefreshedAt: state.RefreshedAt,
		Uptime:      util.FormatDuration(s.now().Sub(s.startedAt)),
	}, nil
}
