package repo

import (
	"testing"

	"github.com/GlebRadaev/discipline/internal/pg"
	staterepo "github.com/GlebRadaev/discipline/internal/repo/state-repo"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repo := New(mockDB, pg.NewMockTXManager(ctrl))

	assert.NotNil(t, repo.StateRepo)
	assert.IsType(t, &staterepo.Repository{}, repo.StateRepo)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}
