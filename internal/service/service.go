package service

import (
	"context"

	"github.com/GlebRadaev/discipline/internal/handlers/rewards"
	"github.com/GlebRadaev/discipline/internal/handlers/timer"
	"github.com/GlebRadaev/discipline/internal/repo"
	ledgerservice "github.com/GlebRadaev/discipline/internal/service/ledgerservice"
	timerservice "github.com/GlebRadaev/discipline/internal/service/timerservice"
)

type Seeder interface {
	Init(ctx context.Context) error
}

type Services struct {
	TimerService  timer.Service
	LedgerService rewards.Service
	Seeder        Seeder
}

func New(repo *repo.Repositories, clock timerservice.Clock) *Services {
	ledgerService := ledgerservice.New(repo.StateRepo)
	timerService := timerservice.New(ledgerService, clock)

	return &Services{
		TimerService:  timerService,
		LedgerService: ledgerService,
		Seeder:        ledgerService,
	}
}
