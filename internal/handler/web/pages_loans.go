package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/store"
	"github.com/pfalcao/go-biblioteca/models"
)

func (h *Handler) loansPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	loans, err := h.services.LoanService.ListLoans(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing loans for page")
		h.render(w, "loan_list.html", pageData{Error: "erro ao carregar os emprestimos"})
		return
	}

	h.render(w, "loan_list.html", pageData{Loans: loans, CSRF: h.csrfForPage(r)})
}

func (h *Handler) loanNewPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Msg("error listing users for loan form")
		h.render(w, "loan_form.html", pageData{Error: "erro ao carregar o formulario"})
		return
	}

	// only books on the shelf can be handed out
	books, err := h.services.CatalogService.ListBooks(r.Context(), true)
	if err != nil {
		log.Err(err).Msg("error listing available books for loan form")
		h.render(w, "loan_form.html", pageData{Error: "erro ao carregar o formulario"})
		return
	}

	h.render(w, "loan_form.html", pageData{
		Users: users,
		Books: books,
		Today: models.Today().String(),
		CSRF:  h.csrfForPage(r),
	})
}

func (h *Handler) loanNewSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if !h.checkCSRF(w, r) {
		return
	}

	userID, _ := strconv.ParseInt(r.PostFormValue("usuario_id"), 10, 64)
	bookID, _ := strconv.ParseInt(r.PostFormValue("livro_id"), 10, 64)

	loanDate, err := models.ParseDate(r.PostFormValue("data_emprestimo"))
	if err != nil {
		h.renderLoanFormError(w, r, "a data do emprestimo e obrigatoria")
		return
	}

	loan := models.Loan{UserID: userID, BookID: bookID, LoanDate: loanDate}
	if _, err := h.services.LoanService.CreateLoan(r.Context(), loan); err != nil {
		log.Err(err).Int64("livro_id", bookID).Msg("page loan creation failed")
		h.renderLoanFormError(w, r, "emprestimo invalido: o livro pode estar indisponivel")
		return
	}

	http.Redirect(w, r, "/emprestimos", http.StatusSeeOther)
}

// returnFormPage shows the return form for one open loan: borrower, book and
// a date input pre-filled with today.
func (h *Handler) returnFormPage(w http.ResponseWriter, r *http.Request) {
	loanID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	loan, ok := h.findOpenLoan(w, r, loanID)
	if !ok {
		return
	}

	h.render(w, "return_form.html", pageData{
		Loan:  loan,
		Today: models.Today().String(),
		CSRF:  h.csrfForPage(r),
	})
}

func (h *Handler) returnSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if !h.checkCSRF(w, r) {
		return
	}

	loanID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	returnDate, err := models.ParseDate(r.PostFormValue("data_devolucao"))
	if err != nil {
		h.renderReturnFormError(w, r, loanID, "a data da devolucao e obrigatoria")
		return
	}

	if _, err := h.services.LoanService.RegisterReturn(r.Context(), loanID, returnDate); err != nil {
		log.Err(err).Int64("id", loanID).Msg("page return registration failed")

		message := "a devolucao nao pode ser registrada: o emprestimo ja foi encerrado"
		if errors.Is(err, store.ErrReturnBeforeLoanDate) {
			message = "a data da devolucao nao pode ser anterior a data do emprestimo"
		}
		h.renderReturnFormError(w, r, loanID, message)
		return
	}

	http.Redirect(w, r, "/emprestimos", http.StatusSeeOther)
}

// findOpenLoan looks the loan up in the listing. A missing or already closed
// loan sends the user back to the list with an error banner.
func (h *Handler) findOpenLoan(w http.ResponseWriter, r *http.Request, loanID int64) (*models.LoanListItem, bool) {
	loans, err := h.services.LoanService.ListLoans(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}

	for i := range loans {
		if loans[i].LoanID == loanID && !loans[i].Returned {
			return &loans[i], true
		}
	}

	h.render(w, "loan_list.html", pageData{
		Error: "emprestimo nao encontrado ou ja encerrado",
		Loans: loans,
		CSRF:  h.csrfForPage(r),
	})
	return nil, false
}

// renderReturnFormError re-renders the return form with an error banner. When
// the loan itself is no longer open, findOpenLoan falls back to the listing.
func (h *Handler) renderReturnFormError(w http.ResponseWriter, r *http.Request, loanID int64, message string) {
	loan, ok := h.findOpenLoan(w, r, loanID)
	if !ok {
		return
	}

	h.render(w, "return_form.html", pageData{
		Error: message,
		Loan:  loan,
		Today: models.Today().String(),
		CSRF:  h.csrfForPage(r),
	})
}

// renderLoanFormError re-renders the loan form with an error banner, keeping
// the user and book selections loaded.
func (h *Handler) renderLoanFormError(w http.ResponseWriter, r *http.Request, message string) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	books, err := h.services.CatalogService.ListBooks(r.Context(), true)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, "loan_form.html", pageData{
		Error: message,
		Users: users,
		Books: books,
		Today: models.Today().String(),
		CSRF:  h.csrfForPage(r),
	})
}
