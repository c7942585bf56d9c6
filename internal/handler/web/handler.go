// Package web implements the browser-facing page surface of the application.
//
// Pages are rendered server-side with html/template and embedded into the
// binary. Authentication reuses the JWT service: the signed token is stored
// in an HttpOnly session cookie, and every state-changing form carries an
// HMAC-signed CSRF token.
package web

import (
	"html/template"
	"net/http"
	"time"

	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/service"
	"github.com/pfalcao/go-biblioteca/models"
)

type Handler struct {
	services *service.Services

	// hashKey signs CSRF tokens.
	hashKey string

	// sessionTTL bounds the session cookie lifetime; kept equal to the JWT
	// token duration so the cookie never outlives the token inside it.
	sessionTTL time.Duration

	templates *template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("web handler created")
	return &Handler{
		services:   services,
		hashKey:    cfg.HashKey,
		sessionTTL: cfg.TokenDuration,
		templates:  parseTemplates(),
		logger:     logger,
	}
}

// pageData is the single view model shared by all templates. Pages fill in
// the fields they need and leave the rest zero.
type pageData struct {
	Error string
	CSRF  string

	Books []models.Book
	Book  *models.Book
	Loans []models.LoanListItem
	Loan  *models.LoanListItem
	Users []models.UserListItem

	// Today pre-fills date inputs with the current date.
	Today string
}

func (h *Handler) render(w http.ResponseWriter, name string, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Err(err).Str("template", name).Msg("error rendering template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
