package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/discipline/docs"
	rewardhandlers "github.com/GlebRadaev/discipline/internal/handlers/rewards"
	timerhandlers "github.com/GlebRadaev/discipline/internal/handlers/timer"
	"github.com/GlebRadaev/discipline/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type TimerHandler interface {
	Start(w http.ResponseWriter, r *http.Request)
	Stop(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type RewardHandler interface {
	UseReward(w http.ResponseWriter, r *http.Request)
	ManualAdd(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	TimerHandler   TimerHandler
	RewardHandler  RewardHandler
	AllowedOrigins []string
}

func New(s *service.Services, allowedOrigins []string) *Handlers {
	return &Handlers{
		TimerHandler:   timerhandlers.New(s.TimerService, s.LedgerService),
		RewardHandler:  rewardhandlers.New(s.LedgerService),
		AllowedOrigins: allowedOrigins,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	origins := h.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}),
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))

	r.Post("/start", h.TimerHandler.Start)
	r.Post("/stop", h.TimerHandler.Stop)
	r.Get("/status", h.TimerHandler.Status)

	r.Post("/use_reward", h.RewardHandler.UseReward)
	r.Post("/manual_add", h.RewardHandler.ManualAdd)

	return r
}
