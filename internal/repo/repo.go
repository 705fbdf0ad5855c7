package repo

import (
	"github.com/GlebRadaev/discipline/internal/pg"
	staterepo "github.com/GlebRadaev/discipline/internal/repo/state-repo"
	"github.com/GlebRadaev/discipline/internal/service/ledgerservice"
)

type Repositories struct {
	StateRepo ledgerservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		StateRepo: staterepo.New(conn, txManager),
	}
}
