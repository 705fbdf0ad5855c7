package dto

import (
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/discipline/internal/domain"
)

type RewardsDTO struct {
	Movie      int     `json:"movie" example:"10"`
	Youtube    int     `json:"youtube" example:"5"`
	Instagram  int     `json:"instagram" example:"1"`
	SnackMoney float64 `json:"snack_money" example:"1"`
}

func NewRewardsDTO(r domain.Rewards) RewardsDTO {
	return RewardsDTO{
		Movie:      r.Movie,
		Youtube:    r.Youtube,
		Instagram:  r.Instagram,
		SnackMoney: r.SnackMoney.InexactFloat64(),
	}
}

type UseRewardRequestDTO struct {
	Type   string          `json:"type" example:"movie"`
	Amount decimal.Decimal `json:"amount" swaggertype:"number" example:"3"`
}

type UseRewardResponseDTO struct {
	Message string     `json:"message" example:"3 movie used."`
	Rewards RewardsDTO `json:"rewards"`
}

type ManualAddRequestDTO struct {
	Minutes int `json:"minutes" example:"60"`
}

type ManualAddResponseDTO struct {
	Message          string     `json:"message" example:"60 minutes added."`
	TotalWorkMinutes int        `json:"total_work_minutes" example:"60"`
	Rewards          RewardsDTO `json:"rewards"`
}
