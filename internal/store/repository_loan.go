package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/models"
)

// loanRepository is the PostgreSQL-backed implementation of [LoanRepository].
//
// The loan lifecycle touches two tables at once: every state change of an
// "emprestimo" row carries a matching flip of the referenced "livro" row's
// availability flag. Both writes always share one transaction, so a crash or
// a concurrent request can never observe a loan without its flag or vice
// versa.
type loanRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLoanRepository constructs a [LoanRepository] backed by the provided
// database connection and logger.
func NewLoanRepository(db *DB, logger *logger.Logger) LoanRepository {
	logger.Debug().Msg("creating loan repository")
	return &loanRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLoan opens a loan for the given user and book.
//
// The availability check and flip is a single conditional UPDATE
// ("SET disponivel = FALSE WHERE id = $1 AND disponivel = TRUE") whose
// affected-row count decides the outcome, so two concurrent requests for the
// same book cannot both succeed: the second UPDATE matches zero rows and the
// request is rejected.
//
// Error handling:
//   - unknown book id → [ErrBookNotFound].
//   - availability flag already false → [ErrBookUnavailable].
//   - unknown user id (FK violation on insert) → [ErrNoUserWasFound].
func (r *loanRepository) CreateLoan(ctx context.Context, loan models.Loan) (models.Loan, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*loanRepository.CreateLoan").Msg("error beginning transaction")
		return models.Loan{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() // no-op after commit

	result, err := tx.ExecContext(ctx, reserveBook, loan.BookID)
	if err != nil {
		log.Err(err).Str("func", "*loanRepository.CreateLoan").Msg("error flipping availability")
		return models.Loan{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Loan{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		// distinguish a missing book from a loaned-out one
		var exists bool
		if err := tx.QueryRowContext(ctx, bookExists, loan.BookID).Scan(&exists); err != nil {
			return models.Loan{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if !exists {
			return models.Loan{}, ErrBookNotFound
		}
		return models.Loan{}, ErrBookUnavailable
	}

	row := tx.QueryRowContext(ctx, createLoan, loan.UserID, loan.BookID, loan.LoanDate)
	if err := row.Scan(&loan.LoanID); err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Loan{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*loanRepository.CreateLoan").Msg("error inserting loan")
		return models.Loan{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Loan{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	loan.Returned = false
	loan.ReturnDate = nil

	log.Debug().Int64("loan_id", loan.LoanID).Int64("book_id", loan.BookID).Msg("loan created")

	return loan, nil
}

// RegisterReturn closes a loan: sets the return date, marks the loan
// returned, and flips the referenced book back to available — all in one
// transaction. The loan row is locked with SELECT ... FOR UPDATE so a
// concurrent double return cannot slip past the returned check.
//
// Error handling:
//   - unknown loan id → [ErrLoanNotFound].
//   - loan already closed → [ErrLoanAlreadyReturned].
//   - returnDate before the loan date → [ErrReturnBeforeLoanDate].
func (r *loanRepository) RegisterReturn(ctx context.Context, loanID int64, returnDate models.Date) (models.Loan, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*loanRepository.RegisterReturn").Msg("error beginning transaction")
		return models.Loan{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() // no-op after commit

	var loan models.Loan
	var storedReturnDate sql.NullTime
	row := tx.QueryRowContext(ctx, getLoanForUpdate, loanID)
	if err := row.Scan(&loan.LoanID, &loan.UserID, &loan.BookID, &loan.LoanDate, &storedReturnDate, &loan.Returned); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Loan{}, ErrLoanNotFound
		}
		log.Err(err).Str("func", "*loanRepository.RegisterReturn").Msg("error scanning loan")
		return models.Loan{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if loan.Returned {
		return models.Loan{}, ErrLoanAlreadyReturned
	}

	if returnDate.Before(loan.LoanDate) {
		return models.Loan{}, ErrReturnBeforeLoanDate
	}

	if _, err := tx.ExecContext(ctx, closeLoan, loanID, returnDate); err != nil {
		log.Err(err).Str("func", "*loanRepository.RegisterReturn").Msg("error closing loan")
		return models.Loan{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err := tx.ExecContext(ctx, releaseBook, loan.BookID); err != nil {
		log.Err(err).Str("func", "*loanRepository.RegisterReturn").Msg("error releasing book")
		return models.Loan{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err := tx.Commit(); err != nil {
		return models.Loan{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	loan.Returned = true
	loan.ReturnDate = &returnDate

	log.Debug().Int64("loan_id", loan.LoanID).Int64("book_id", loan.BookID).Msg("return registered")

	return loan, nil
}

// GetAllLoans lists every loan joined with the borrower's username and the
// book title, ordered by loan id.
func (r *loanRepository) GetAllLoans(ctx context.Context) ([]models.LoanListItem, error) {
	return r.queryLoanList(ctx, getAllLoans)
}

// GetOverdueLoans lists open loans handed out strictly before loanedBefore.
// Consumed by the overdue scanner worker.
func (r *loanRepository) GetOverdueLoans(ctx context.Context, loanedBefore models.Date) ([]models.LoanListItem, error) {
	return r.queryLoanList(ctx, getOverdueLoans, loanedBefore)
}

func (r *loanRepository) queryLoanList(ctx context.Context, query string, args ...any) ([]models.LoanListItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*loanRepository.queryLoanList").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var loans []models.LoanListItem
	for rows.Next() {
		var item models.LoanListItem
		var returnDate sql.NullTime
		if err := rows.Scan(&item.LoanID, &item.Username, &item.BookTitle, &item.LoanDate, &returnDate, &item.Returned); err != nil {
			log.Err(err).Str("func", "*loanRepository.queryLoanList").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if returnDate.Valid {
			d := models.Date{Time: returnDate.Time}
			item.ReturnDate = &d
		}
		loans = append(loans, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return loans, nil
}
