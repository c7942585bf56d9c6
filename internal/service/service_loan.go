package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/store"
	"github.com/pfalcao/go-biblioteca/models"
)

// loanService is the concrete implementation of LoanService. All state
// transitions happen inside repository transactions; this layer only
// validates inputs and fills in defaults.
type loanService struct {
	loanRepository store.LoanRepository

	// overdueAfter is the loan age past which an open loan counts as overdue.
	overdueAfter time.Duration

	logger *logger.Logger
}

func NewLoanService(loanRepository store.LoanRepository, cfg config.Workers, logger *logger.Logger) LoanService {
	return &loanService{
		loanRepository: loanRepository,
		overdueAfter:   cfg.OverdueAfter,
		logger:         logger,
	}
}

// CreateLoan lends a book to a user.
//
// Returns the persisted loan or:
//   - [ErrValidationLoanIDs] when either id is not positive.
//   - [ErrValidationLoanDate] when the loan date is missing.
//   - A wrapped storage error when the book is missing, unavailable, or the
//     user does not exist (see [store.ErrBookNotFound],
//     [store.ErrBookUnavailable], [store.ErrNoUserWasFound]).
func (l *loanService) CreateLoan(ctx context.Context, loan models.Loan) (models.Loan, error) {
	log := logger.FromContext(ctx)

	if loan.UserID <= 0 || loan.BookID <= 0 {
		log.Error().Int64("usuario_id", loan.UserID).Int64("livro_id", loan.BookID).Msg("invalid loan data")
		return models.Loan{}, ErrValidationLoanIDs
	}
	if loan.LoanDate.IsZero() {
		log.Error().Int64("livro_id", loan.BookID).Msg("loan date is missing")
		return models.Loan{}, ErrValidationLoanDate
	}

	createdLoan, err := l.loanRepository.CreateLoan(ctx, loan)
	if err != nil {
		log.Err(err).Int64("livro_id", loan.BookID).Msg("loan creation ended with error")
		return models.Loan{}, fmt.Errorf("loan creation ended with error: %w", err)
	}

	return createdLoan, nil
}

// RegisterReturn closes an open loan on the given date.
//
// Returns [ErrValidationReturnDate] when the return date is missing. Storage
// rejects unknown loans ([store.ErrLoanNotFound]), loans already closed
// ([store.ErrLoanAlreadyReturned]) and return dates preceding the loan date
// ([store.ErrReturnBeforeLoanDate]); a second return of the same loan is
// therefore always an error, never a silent no-op.
func (l *loanService) RegisterReturn(ctx context.Context, loanID int64, returnDate models.Date) (models.Loan, error) {
	log := logger.FromContext(ctx)

	if loanID <= 0 {
		return models.Loan{}, ErrInvalidDataProvided
	}
	if returnDate.IsZero() {
		log.Error().Int64("id", loanID).Msg("return date is missing")
		return models.Loan{}, ErrValidationReturnDate
	}

	closedLoan, err := l.loanRepository.RegisterReturn(ctx, loanID, returnDate)
	if err != nil {
		log.Err(err).Int64("id", loanID).Msg("return registration ended with error")
		return models.Loan{}, fmt.Errorf("return registration ended with error: %w", err)
	}

	return closedLoan, nil
}

func (l *loanService) ListLoans(ctx context.Context) ([]models.LoanListItem, error) {
	loans, err := l.loanRepository.GetAllLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing loans ended with error: %w", err)
	}

	return loans, nil
}

// ListOverdueLoans returns open loans older than the configured threshold.
func (l *loanService) ListOverdueLoans(ctx context.Context) ([]models.LoanListItem, error) {
	cutoff := models.Date{Time: time.Now().UTC().Add(-l.overdueAfter)}

	loans, err := l.loanRepository.GetOverdueLoans(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("listing overdue loans ended with error: %w", err)
	}

	return loans, nil
}
