package rewards

//go:generate mockgen -source=rewards.go -destination=mock_service.go -package=rewards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/discipline/internal/domain"
	"github.com/GlebRadaev/discipline/internal/dto"
	"github.com/GlebRadaev/discipline/internal/service/ledgerservice"
	"github.com/GlebRadaev/discipline/pkg/utils"
)

type Service interface {
	AddMinutes(ctx context.Context, minutes int) (*domain.Snapshot, error)
	Consume(ctx context.Context, rewardType domain.RewardType, amount decimal.Decimal) (*domain.Snapshot, error)
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

type RewardHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *RewardHandler {
	return &RewardHandler{
		ledgerService: ledgerService,
	}
}

// decodeBody treats an empty body as an empty JSON object.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// UseReward godoc
//
//	@Summary		Redeem a reward
//	@Description	Record consumption of a reward. The balance is not checked and may become negative.
//	@Tags			Rewards
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UseRewardRequestDTO		true	"Reward type and amount"
//	@Success		200		{object}	dto.UseRewardResponseDTO	"Reward used"
//	@Failure		400		{object}	utils.Response				"Invalid reward type or amount"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/use_reward [post]
func (h *RewardHandler) UseReward(w http.ResponseWriter, r *http.Request) {
	var req dto.UseRewardRequestDTO
	if err := decodeBody(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := h.ledgerService.Consume(r.Context(), domain.RewardType(req.Type), req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrInvalidRewardType):
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid reward type")
		case errors.Is(err, ledgerservice.ErrFractionalAmount):
			utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Amount for %s must be a whole number", req.Type))
		case errors.Is(err, ledgerservice.ErrAmountOutOfRange):
			utils.RespondWithError(w, http.StatusBadRequest, fmt.Sprintf("Amount for %s is out of range", req.Type))
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UseRewardResponseDTO{
		Message: fmt.Sprintf("%s %s used.", req.Amount.String(), req.Type),
		Rewards: dto.NewRewardsDTO(snapshot.Rewards),
	})
}

// ManualAdd godoc
//
//	@Summary		Add work minutes manually
//	@Description	Credit work minutes without running the timer. Missing minutes default to 0; negative values are applied as is.
//	@Tags			Rewards
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ManualAddRequestDTO		true	"Minutes to add"
//	@Success		200		{object}	dto.ManualAddResponseDTO	"Minutes added"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/manual_add [post]
func (h *RewardHandler) ManualAdd(w http.ResponseWriter, r *http.Request) {
	var req dto.ManualAddRequestDTO
	if err := decodeBody(r, &req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snapshot, err := h.ledgerService.AddMinutes(r.Context(), req.Minutes)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ManualAddResponseDTO{
		Message:          fmt.Sprintf("%d minutes added.", req.Minutes),
		TotalWorkMinutes: snapshot.State.TotalWorkMinutes,
		Rewards:          dto.NewRewardsDTO(snapshot.Rewards),
	})
}
