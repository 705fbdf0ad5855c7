package timer

//go:generate mockgen -source=timer.go -destination=mock_service.go -package=timer

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/GlebRadaev/discipline/internal/domain"
	"github.com/GlebRadaev/discipline/internal/dto"
	"github.com/GlebRadaev/discipline/internal/service/timerservice"
	"github.com/GlebRadaev/discipline/pkg/utils"
)

type Service interface {
	Start(ctx context.Context) time.Time
	Stop(ctx context.Context) (*domain.StopResult, error)
	Running() bool
}

type Ledger interface {
	Snapshot(ctx context.Context) (*domain.Snapshot, error)
}

type TimerHandler struct {
	timerService Service
	ledger       Ledger
}

func New(timerService Service, ledger Ledger) *TimerHandler {
	return &TimerHandler{
		timerService: timerService,
		ledger:       ledger,
	}
}

// Start godoc
//
//	@Summary		Start the work timer
//	@Description	Start counting work time. Starting a running timer restarts it and the time since the previous start is lost.
//	@Tags			Timer
//	@Produce		json
//	@Success		200	{object}	dto.MessageResponseDTO	"Timer started"
//	@Router			/start [post]
func (h *TimerHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.timerService.Start(r.Context())
	utils.RespondWithJSON(w, http.StatusOK, dto.MessageResponseDTO{Message: "Timer started."})
}

// Stop godoc
//
//	@Summary		Stop the work timer
//	@Description	Stop the timer and credit the elapsed whole minutes to the ledger.
//	@Tags			Timer
//	@Produce		json
//	@Success		200	{object}	dto.StopResponseDTO	"Worked minutes and updated rewards"
//	@Failure		400	{object}	utils.Response		"Timer was not started"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/stop [post]
func (h *TimerHandler) Stop(w http.ResponseWriter, r *http.Request) {
	result, err := h.timerService.Stop(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, timerservice.ErrTimerNotRunning):
			utils.RespondWithError(w, http.StatusBadRequest, "Timer was not started.")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StopResponseDTO{
		WorkedMinutes:    result.WorkedMinutes,
		TotalWorkMinutes: result.Snapshot.State.TotalWorkMinutes,
		Rewards:          dto.NewRewardsDTO(result.Snapshot.Rewards),
	})
}

// Status godoc
//
//	@Summary		Get timer and rewards status
//	@Description	Report whether the timer is running, the accumulated work minutes and the available rewards.
//	@Tags			Timer
//	@Produce		json
//	@Success		200	{object}	dto.StatusResponseDTO	"Current status"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/status [get]
func (h *TimerHandler) Status(w http.ResponseWriter, r *http.Request) {
	running := h.timerService.Running()

	snapshot, err := h.ledger.Snapshot(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatusResponseDTO{
		TimerRunning:     running,
		TotalWorkMinutes: snapshot.State.TotalWorkMinutes,
		Rewards:          dto.NewRewardsDTO(snapshot.Rewards),
	})
}
