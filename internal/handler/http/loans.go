package http

import (
	"encoding/json"
	"net/http"

	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/utils"
	"github.com/pfalcao/go-biblioteca/models"
)

func (h *Handler) listLoans(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	loans, err := h.services.LoanService.ListLoans(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listLoans").Msg("error listing loans")
		respondError(w, err)
		return
	}
	if loans == nil {
		loans = []models.LoanListItem{}
	}

	utils.WriteJSON(w, loans, http.StatusOK)
}

func (h *Handler) createLoan(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var loan models.Loan
	if err := json.NewDecoder(r.Body).Decode(&loan); err != nil {
		log.Err(err).Str("func", "*Handler.createLoan").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdLoan, err := h.services.LoanService.CreateLoan(r.Context(), loan)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createLoan").Int64("livro_id", loan.BookID).Msg("error creating loan")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{ID: createdLoan.LoanID}, http.StatusCreated)
}

func (h *Handler) registerReturn(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	loanID, err := idFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var ret models.ReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&ret); err != nil {
		log.Err(err).Str("func", "*Handler.registerReturn").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, err := h.services.LoanService.RegisterReturn(r.Context(), loanID, ret.ReturnDate); err != nil {
		log.Err(err).Str("func", "*Handler.registerReturn").Int64("id", loanID).Msg("error registering return")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "devolucao registrada"}, http.StatusOK)
}
