package ledgerservice

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/GlebRadaev/discipline/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	return New(repo), repo
}

func newMemoryService(t *testing.T) *Service {
	service := New(newMemoryRepo())
	require.NoError(t, service.Init(context.Background()))
	return service
}

func TestInit(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name        string
		prepareMock func()
		expectErr   bool
	}{
		{
			name: "Seeds singleton row",
			prepareMock: func() {
				repo.EXPECT().CreateUserState(gomock.Any(), domain.SingletonUserID).Return(nil)
			},
		},
		{
			name: "Seed error",
			prepareMock: func() {
				repo.EXPECT().CreateUserState(gomock.Any(), domain.SingletonUserID).Return(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := service.Init(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddMinutes(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		minutes       int
		prepareMock   func()
		expectedTotal int
		expectedMovie int
		expectedError error
	}{
		{
			name:    "Credits minutes",
			minutes: 60,
			prepareMock: func() {
				repo.EXPECT().AddWorkMinutes(gomock.Any(), domain.SingletonUserID, 60).
					Return(&domain.UserState{ID: 1, TotalWorkMinutes: 60}, nil)
			},
			expectedTotal: 60,
			expectedMovie: 10,
		},
		{
			name:    "Negative minutes are passed through",
			minutes: -30,
			prepareMock: func() {
				repo.EXPECT().AddWorkMinutes(gomock.Any(), domain.SingletonUserID, -30).
					Return(&domain.UserState{ID: 1, TotalWorkMinutes: 90}, nil)
			},
			expectedTotal: 90,
			expectedMovie: 10,
		},
		{
			name:    "Repository error",
			minutes: 5,
			prepareMock: func() {
				repo.EXPECT().AddWorkMinutes(gomock.Any(), domain.SingletonUserID, 5).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			snapshot, err := service.AddMinutes(context.Background(), tt.minutes)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, snapshot)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, snapshot.State.TotalWorkMinutes)
			assert.Equal(t, tt.expectedMovie, snapshot.Rewards.Movie)
		})
	}
}

func TestConsume(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		rewardType    domain.RewardType
		amount        decimal.Decimal
		prepareMock   func()
		expectedMovie int
		expectedError error
	}{
		{
			name:       "Consumes movie minutes",
			rewardType: domain.RewardMovie,
			amount:     decimal.NewFromInt(3),
			prepareMock: func() {
				repo.EXPECT().AddUsed(gomock.Any(), domain.SingletonUserID, domain.RewardMovie, decimal.NewFromInt(3)).
					Return(&domain.UserState{ID: 1, TotalWorkMinutes: 60, UsedMovie: 3}, nil)
			},
			expectedMovie: 7,
		},
		{
			name:          "Invalid reward type",
			rewardType:    domain.RewardType("bogus"),
			amount:        decimal.NewFromInt(1),
			prepareMock:   func() {},
			expectedError: ErrInvalidRewardType,
		},
		{
			name:          "Fractional amount for integral type",
			rewardType:    domain.RewardYoutube,
			amount:        decimal.RequireFromString("1.5"),
			prepareMock:   func() {},
			expectedError: ErrFractionalAmount,
		},
		{
			name:          "Integral amount above int64",
			rewardType:    domain.RewardMovie,
			amount:        decimal.RequireFromString("18446744073709551619"),
			prepareMock:   func() {},
			expectedError: ErrAmountOutOfRange,
		},
		{
			name:          "Integral amount below int64",
			rewardType:    domain.RewardInstagram,
			amount:        decimal.RequireFromString("-9223372036854775809"),
			prepareMock:   func() {},
			expectedError: ErrAmountOutOfRange,
		},
		{
			name:       "Largest int64 amount",
			rewardType: domain.RewardMovie,
			amount:     decimal.NewFromInt(math.MaxInt64),
			prepareMock: func() {
				repo.EXPECT().AddUsed(gomock.Any(), domain.SingletonUserID, domain.RewardMovie, decimal.NewFromInt(math.MaxInt64)).
					Return(&domain.UserState{ID: 1, TotalWorkMinutes: 60, UsedMovie: 10}, nil)
			},
			expectedMovie: 0,
		},
		{
			name:       "Fractional snack money",
			rewardType: domain.RewardSnackMoney,
			amount:     decimal.RequireFromString("0.5"),
			prepareMock: func() {
				repo.EXPECT().AddUsed(gomock.Any(), domain.SingletonUserID, domain.RewardSnackMoney, gomock.Any()).
					Return(&domain.UserState{ID: 1, TotalWorkMinutes: 60, UsedSnackMoney: decimal.RequireFromString("0.5")}, nil)
			},
			expectedMovie: 10,
		},
		{
			name:       "Repository error",
			rewardType: domain.RewardInstagram,
			amount:     decimal.NewFromInt(1),
			prepareMock: func() {
				repo.EXPECT().AddUsed(gomock.Any(), domain.SingletonUserID, domain.RewardInstagram, gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			snapshot, err := service.Consume(context.Background(), tt.rewardType, tt.amount)
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				assert.Nil(t, snapshot)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedMovie, snapshot.Rewards.Movie)
		})
	}
}

func TestSnapshot(t *testing.T) {
	service, repo := NewMock(t)
	tests := []struct {
		name          string
		prepareMock   func()
		expectedTotal int
		expectedError error
	}{
		{
			name: "Reads state",
			prepareMock: func() {
				repo.EXPECT().GetUserState(gomock.Any(), domain.SingletonUserID).
					Return(&domain.UserState{ID: 1, TotalWorkMinutes: 130}, nil)
			},
			expectedTotal: 130,
		},
		{
			name: "Missing state",
			prepareMock: func() {
				repo.EXPECT().GetUserState(gomock.Any(), domain.SingletonUserID).Return(nil, nil)
			},
			expectedError: ErrStateNotFound,
		},
		{
			name: "Repository error",
			prepareMock: func() {
				repo.EXPECT().GetUserState(gomock.Any(), domain.SingletonUserID).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			snapshot, err := service.Snapshot(context.Background())
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, snapshot.State.TotalWorkMinutes)
		})
	}
}

func TestBalancesIsIdempotent(t *testing.T) {
	service := newMemoryService(t)
	ctx := context.Background()

	_, err := service.AddMinutes(ctx, 185)
	require.NoError(t, err)
	_, err = service.Consume(ctx, domain.RewardSnackMoney, decimal.RequireFromString("0.3"))
	require.NoError(t, err)

	first, err := service.Balances(ctx)
	require.NoError(t, err)
	second, err := service.Balances(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Movie, second.Movie)
	assert.Equal(t, first.Youtube, second.Youtube)
	assert.Equal(t, first.Instagram, second.Instagram)
	assert.True(t, first.SnackMoney.Equal(second.SnackMoney))
	assert.Equal(t, "2.7", first.SnackMoney.String())
}

func TestConsumeIsAdditive(t *testing.T) {
	amounts := map[domain.RewardType][2]decimal.Decimal{
		domain.RewardMovie:      {decimal.NewFromInt(3), decimal.NewFromInt(10)},
		domain.RewardYoutube:    {decimal.NewFromInt(0), decimal.NewFromInt(4)},
		domain.RewardInstagram:  {decimal.NewFromInt(1), decimal.NewFromInt(1)},
		domain.RewardSnackMoney: {decimal.RequireFromString("0.25"), decimal.RequireFromString("1.1")},
	}
	ctx := context.Background()

	for rewardType, pair := range amounts {
		t.Run(string(rewardType), func(t *testing.T) {
			split := newMemoryService(t)
			_, err := split.Consume(ctx, rewardType, pair[0])
			require.NoError(t, err)
			splitSnapshot, err := split.Consume(ctx, rewardType, pair[1])
			require.NoError(t, err)

			whole := newMemoryService(t)
			wholeSnapshot, err := whole.Consume(ctx, rewardType, pair[0].Add(pair[1]))
			require.NoError(t, err)

			assert.Equal(t, wholeSnapshot.State.UsedMovie, splitSnapshot.State.UsedMovie)
			assert.Equal(t, wholeSnapshot.State.UsedYoutube, splitSnapshot.State.UsedYoutube)
			assert.Equal(t, wholeSnapshot.State.UsedInstagram, splitSnapshot.State.UsedInstagram)
			assert.True(t, wholeSnapshot.State.UsedSnackMoney.Equal(splitSnapshot.State.UsedSnackMoney))
		})
	}
}

func TestRedemptionScenario(t *testing.T) {
	service := newMemoryService(t)
	ctx := context.Background()

	snapshot, err := service.AddMinutes(ctx, 60)
	require.NoError(t, err)
	assert.Equal(t, 60, snapshot.State.TotalWorkMinutes)
	assert.Equal(t, 10, snapshot.Rewards.Movie)
	assert.Equal(t, 5, snapshot.Rewards.Youtube)
	assert.Equal(t, 1, snapshot.Rewards.Instagram)
	assert.True(t, decimal.NewFromInt(1).Equal(snapshot.Rewards.SnackMoney))

	snapshot, err = service.Consume(ctx, domain.RewardMovie, decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, 7, snapshot.Rewards.Movie)

	snapshot, err = service.Consume(ctx, domain.RewardMovie, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, -3, snapshot.Rewards.Movie)

	_, err = service.Consume(ctx, domain.RewardType("bogus"), decimal.NewFromInt(1))
	assert.ErrorIs(t, err, ErrInvalidRewardType)

	after, err := service.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, after.State.UsedMovie)
	assert.Equal(t, 0, after.State.UsedYoutube)
	assert.Equal(t, 0, after.State.UsedInstagram)
	assert.True(t, after.State.UsedSnackMoney.IsZero())
}

func TestConcurrentAddMinutes(t *testing.T) {
	const callers = 200
	service := newMemoryService(t)

	var g errgroup.Group
	for i := 0; i < callers; i++ {
		g.Go(func() error {
			_, err := service.AddMinutes(context.Background(), 1)
			return err
		})
	}
	require.NoError(t, g.Wait())

	snapshot, err := service.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, callers, snapshot.State.TotalWorkMinutes)
}
