package http

import (
	"net/http"

	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/utils"
	"github.com/pfalcao/go-biblioteca/models"
)

// listUsers returns every librarian account as an id+username pair. The loan
// form uses this listing to name a borrower.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		respondError(w, err)
		return
	}
	if users == nil {
		users = []models.UserListItem{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
