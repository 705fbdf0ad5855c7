package ledgerservice

//go:generate mockgen -source=ledgerservice.go -destination=mock_repo.go -package=ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/discipline/internal/domain"
)

type Repo interface {
	GetUserState(ctx context.Context, userID int) (*domain.UserState, error)
	CreateUserState(ctx context.Context, userID int) error
	AddWorkMinutes(ctx context.Context, userID int, minutes int) (*domain.UserState, error)
	AddUsed(ctx context.Context, userID int, rewardType domain.RewardType, amount decimal.Decimal) (*domain.UserState, error)
}

var (
	ErrInvalidRewardType = errors.New("invalid reward type")
	ErrFractionalAmount  = errors.New("amount must be a whole number")
	ErrAmountOutOfRange  = errors.New("amount is out of range")
	ErrStateNotFound     = errors.New("user state not found")
)

var (
	minAmount = decimal.NewFromInt(math.MinInt64)
	maxAmount = decimal.NewFromInt(math.MaxInt64)
)

type Service struct {
	repo   Repo
	userID int
}

func New(repo Repo) *Service {
	return &Service{
		repo:   repo,
		userID: domain.SingletonUserID,
	}
}

// Init creates the zeroed ledger row on first startup.
func (s *Service) Init(ctx context.Context) error {
	if err := s.repo.CreateUserState(ctx, s.userID); err != nil {
		zap.L().Error("failed to seed user state", zap.Error(err))
		return fmt.Errorf("seed user state: %w", err)
	}
	return nil
}

// AddMinutes credits work minutes. Negative values are applied unchanged.
func (s *Service) AddMinutes(ctx context.Context, minutes int) (*domain.Snapshot, error) {
	state, err := s.repo.AddWorkMinutes(ctx, s.userID, minutes)
	if err != nil {
		zap.L().Error("failed to add work minutes", zap.Int("minutes", minutes), zap.Error(err))
		return nil, err
	}
	zap.L().Debug("work minutes added",
		zap.Int("minutes", minutes),
		zap.Int("total_work_minutes", state.TotalWorkMinutes),
	)
	return newSnapshot(state), nil
}

// Consume records a redemption. It never checks the available balance,
// so over-redemption drives the balance negative.
func (s *Service) Consume(ctx context.Context, rewardType domain.RewardType, amount decimal.Decimal) (*domain.Snapshot, error) {
	if !rewardType.Valid() {
		return nil, ErrInvalidRewardType
	}
	if rewardType.Integral() && !amount.IsInteger() {
		return nil, ErrFractionalAmount
	}
	if rewardType.Integral() && (amount.LessThan(minAmount) || amount.GreaterThan(maxAmount)) {
		return nil, ErrAmountOutOfRange
	}

	state, err := s.repo.AddUsed(ctx, s.userID, rewardType, amount)
	if err != nil {
		zap.L().Error("failed to consume reward",
			zap.String("type", string(rewardType)),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return newSnapshot(state), nil
}

func (s *Service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	state, err := s.repo.GetUserState(ctx, s.userID)
	if err != nil {
		zap.L().Error("failed to get user state", zap.Error(err))
		return nil, err
	}
	if state == nil {
		return nil, ErrStateNotFound
	}
	return newSnapshot(state), nil
}

func (s *Service) Balances(ctx context.Context) (domain.Rewards, error) {
	snapshot, err := s.Snapshot(ctx)
	if err != nil {
		return domain.Rewards{}, err
	}
	return snapshot.Rewards, nil
}
