package http

import (
	"errors"
	"net/http"

	"github.com/pfalcao/go-biblioteca/internal/service"
	"github.com/pfalcao/go-biblioteca/internal/store"
	"github.com/pfalcao/go-biblioteca/internal/utils"
	"github.com/pfalcao/go-biblioteca/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	service.ErrValidationUsername:   http.StatusBadRequest,
	service.ErrValidationPassword:   http.StatusBadRequest,
	service.ErrValidationTitle:      http.StatusBadRequest,
	service.ErrValidationAuthor:     http.StatusBadRequest,
	service.ErrValidationYear:       http.StatusBadRequest,
	service.ErrValidationLoanIDs:    http.StatusBadRequest,
	service.ErrValidationLoanDate:   http.StatusBadRequest,
	service.ErrValidationReturnDate: http.StatusBadRequest,
	errInvalidID:                    http.StatusBadRequest,

	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrBookUnavailable:      http.StatusBadRequest,
	store.ErrReturnBeforeLoanDate: http.StatusBadRequest,
	store.ErrBookNotFound:         http.StatusNotFound,
	store.ErrLoanNotFound:         http.StatusNotFound,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrLoginAlreadyExists:   http.StatusConflict,
	store.ErrBookHasLoans:         http.StatusConflict,
	store.ErrLoanAlreadyReturned:  http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes the JSON error body matching err's mapped status.
// Internal errors are masked with the generic status text so that storage
// details never leak to clients.
func respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
