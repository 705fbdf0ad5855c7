package ledgerservice

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/discipline/internal/domain"
)

// MinutesPerUnit is the amount of work that earns one reward unit.
const MinutesPerUnit = 60

const (
	movieRate     = 10
	youtubeRate   = 5
	instagramRate = 1

	snackMoneyPlaces = 2
)

var snackMoneyRate = decimal.NewFromInt(1)

// RewardUnits floors the division: 59 minutes earn nothing and -1 minute
// already costs a whole unit.
func RewardUnits(totalWorkMinutes int) int {
	units := totalWorkMinutes / MinutesPerUnit
	if totalWorkMinutes%MinutesPerUnit != 0 && totalWorkMinutes < 0 {
		units--
	}
	return units
}

// CalculateRewards derives the available balances from the ledger state.
// Snack money is rounded half to even to two decimal places.
func CalculateRewards(state domain.UserState) domain.Rewards {
	units := RewardUnits(state.TotalWorkMinutes)

	snack := decimal.NewFromInt(int64(units)).
		Mul(snackMoneyRate).
		Sub(state.UsedSnackMoney).
		RoundBank(snackMoneyPlaces)

	return domain.Rewards{
		Movie:      units*movieRate - state.UsedMovie,
		Youtube:    units*youtubeRate - state.UsedYoutube,
		Instagram:  units*instagramRate - state.UsedInstagram,
		SnackMoney: snack,
	}
}

func newSnapshot(state *domain.UserState) *domain.Snapshot {
	return &domain.Snapshot{
		State:   *state,
		Rewards: CalculateRewards(*state),
	}
}
