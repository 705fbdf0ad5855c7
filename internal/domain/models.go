package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SingletonUserID keys the only user_state row. The service is single-tenant;
// repositories still take a user id so the key can become a parameter later.
const SingletonUserID = 1

type RewardType string

const (
	RewardMovie      RewardType = "movie"
	RewardYoutube    RewardType = "youtube"
	RewardInstagram  RewardType = "instagram"
	RewardSnackMoney RewardType = "snack_money"
)

func (t RewardType) Valid() bool {
	switch t {
	case RewardMovie, RewardYoutube, RewardInstagram, RewardSnackMoney:
		return true
	}
	return false
}

// Integral reports whether consumption of t is counted in whole units.
func (t RewardType) Integral() bool {
	return t != RewardSnackMoney
}

type UserState struct {
	ID               int             `db:"id"`
	TotalWorkMinutes int             `db:"total_work_minutes"`
	UsedMovie        int             `db:"used_movie"`
	UsedYoutube      int             `db:"used_youtube"`
	UsedInstagram    int             `db:"used_instagram"`
	UsedSnackMoney   decimal.Decimal `db:"used_snack_money"`
}

// Rewards are the balances still available; any of them may be negative.
type Rewards struct {
	Movie      int
	Youtube    int
	Instagram  int
	SnackMoney decimal.Decimal
}

type Snapshot struct {
	State   UserState
	Rewards Rewards
}

type TimerState struct {
	Running   bool
	StartedAt time.Time
}

type StopResult struct {
	WorkedMinutes int
	Snapshot      *Snapshot
}
