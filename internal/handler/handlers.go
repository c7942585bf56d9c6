package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/handler/http"
	"github.com/pfalcao/go-biblioteca/internal/handler/web"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	Web  *web.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
		Web:  web.NewHandler(services, cfg.Services, logger),
	}, nil
}

// Router builds the application router: the JSON API under /api plus the
// browser-facing pages at the root.
func (h *Handlers) Router() *chi.Mux {
	router := h.HTTP.Init()
	h.Web.Register(router)
	return router
}
