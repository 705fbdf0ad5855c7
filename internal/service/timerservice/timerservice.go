package timerservice

//go:generate mockgen -source=timerservice.go -destination=mock_ledger.go -package=timerservice

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/discipline/internal/domain"
)

type Ledger interface {
	AddMinutes(ctx context.Context, minutes int) (*domain.Snapshot, error)
}

var ErrTimerNotRunning = errors.New("timer was not started")

// Service is the Idle/Running state machine. The state lives in memory only,
// so a restart drops a running session.
type Service struct {
	ledger Ledger
	clock  Clock

	mu    sync.Mutex
	state domain.TimerState
}

func New(ledger Ledger, clock Clock) *Service {
	if clock == nil {
		clock = SystemClock
	}
	return &Service{
		ledger: ledger,
		clock:  clock,
	}
}

// Start moves the timer to Running. Starting a running timer restarts the
// clock and the minutes since the previous start are not credited.
func (s *Service) Start(_ context.Context) time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.state.Running {
		zap.L().Warn("timer restarted while running, elapsed time discarded",
			zap.Duration("discarded", now.Sub(s.state.StartedAt)),
		)
	}
	s.state = domain.TimerState{Running: true, StartedAt: now}
	zap.L().Info("timer started", zap.Time("started_at", now))
	return now
}

// Stop credits the elapsed whole minutes to the ledger and moves the timer
// to Idle. When the ledger write fails the timer keeps running unchanged.
// If the clock went backwards since Start, zero minutes are credited.
func (s *Service) Stop(ctx context.Context) (*domain.StopResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Running {
		return nil, ErrTimerNotRunning
	}

	worked := ElapsedMinutes(s.state.StartedAt, s.clock.Now())
	snapshot, err := s.ledger.AddMinutes(ctx, worked)
	if err != nil {
		zap.L().Error("failed to credit timer session", zap.Int("worked_minutes", worked), zap.Error(err))
		return nil, err
	}

	s.state = domain.TimerState{}
	zap.L().Info("timer stopped",
		zap.Int("worked_minutes", worked),
		zap.Int("total_work_minutes", snapshot.State.TotalWorkMinutes),
	)
	return &domain.StopResult{
		WorkedMinutes: worked,
		Snapshot:      snapshot,
	}, nil
}

func (s *Service) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Running
}

func (s *Service) State() domain.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ElapsedMinutes truncates to whole minutes. A clock that went backwards
// yields zero.
func ElapsedMinutes(startedAt, now time.Time) int {
	elapsed := now.Sub(startedAt)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / time.Minute)
}
