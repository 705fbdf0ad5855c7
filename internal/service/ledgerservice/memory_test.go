package ledgerservice

import (
	"context"
	"sync"

	"github.com/GlebRadaev/discipline/internal/domain"
	"github.com/shopspring/decimal"
)

// memoryRepo applies every increment under one lock, the way the UPDATE
// statements do in Postgres.
type memoryRepo struct {
	mu     sync.Mutex
	states map[int]*domain.UserState
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{states: make(map[int]*domain.UserState)}
}

func (r *memoryRepo) GetUserState(_ context.Context, userID int) (*domain.UserState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[userID]
	if !ok {
		return nil, nil
	}
	cp := *state
	return &cp, nil
}

func (r *memoryRepo) CreateUserState(_ context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.states[userID]; !ok {
		r.states[userID] = &domain.UserState{ID: userID}
	}
	return nil
}

func (r *memoryRepo) AddWorkMinutes(_ context.Context, userID int, minutes int) (*domain.UserState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.states[userID]
	state.TotalWorkMinutes += minutes
	cp := *state
	return &cp, nil
}

func (r *memoryRepo) AddUsed(_ context.Context, userID int, rewardType domain.RewardType, amount decimal.Decimal) (*domain.UserState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state := r.states[userID]
	switch rewardType {
	case domain.RewardMovie:
		state.UsedMovie += int(amount.IntPart())
	case domain.RewardYoutube:
		state.UsedYoutube += int(amount.IntPart())
	case domain.RewardInstagram:
		state.UsedInstagram += int(amount.IntPart())
	case domain.RewardSnackMoney:
		state.UsedSnackMoney = state.UsedSnackMoney.Add(amount)
	}
	cp := *state
	return &cp, nil
}
