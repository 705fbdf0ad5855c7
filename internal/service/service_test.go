package service

import (
	"testing"

	"github.com/GlebRadaev/discipline/internal/repo"
	"github.com/GlebRadaev/discipline/internal/service/ledgerservice"
	"github.com/GlebRadaev/discipline/internal/service/timerservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	repos := &repo.Repositories{
		StateRepo: ledgerservice.NewMockRepo(ctrl),
	}

	services := New(repos, timerservice.SystemClock)

	assert.NotNil(t, services.TimerService)
	assert.NotNil(t, services.LedgerService)
	assert.NotNil(t, services.Seeder)
	assert.IsType(t, &timerservice.Service{}, services.TimerService)
	assert.IsType(t, &ledgerservice.Service{}, services.LedgerService)
	assert.False(t, services.TimerService.Running())
}
