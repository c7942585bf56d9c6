package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/models"
)

func newTestLoanRepo(t *testing.T) (*loanRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &loanRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateLoan_Success(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()
	loan := models.Loan{
		UserID:   1,
		BookID:   3,
		LoanDate: models.NewDate(2024, time.January, 1),
	}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE livro").
		WithArgs(loan.BookID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO emprestimo").
		WithArgs(loan.UserID, loan.BookID, loan.LoanDate).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	created, err := repo.CreateLoan(ctx, loan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.LoanID != 7 {
		t.Errorf("expected LoanID=7, got %d", created.LoanID)
	}
	if created.Returned {
		t.Error("new loan must be open")
	}
	if created.ReturnDate != nil {
		t.Error("new loan must have no return date")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateLoan_BookUnavailable(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE livro").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.CreateLoan(ctx, models.Loan{UserID: 1, BookID: 3, LoanDate: models.NewDate(2024, time.January, 1)})
	if !errors.Is(err, ErrBookUnavailable) {
		t.Fatalf("expected ErrBookUnavailable, got %v", err)
	}
}

func TestCreateLoan_BookNotFound(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE livro").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.CreateLoan(ctx, models.Loan{UserID: 1, BookID: 99, LoanDate: models.NewDate(2024, time.January, 1)})
	if !errors.Is(err, ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestCreateLoan_UnknownUser(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE livro").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO emprestimo").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	_, err := repo.CreateLoan(ctx, models.Loan{UserID: 404, BookID: 3, LoanDate: models.NewDate(2024, time.January, 1)})
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestCreateLoan_RollbackOnInsertFailure(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE livro").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO emprestimo").
		WillReturnError(errors.New("db network error"))
	mock.ExpectRollback()

	_, err := repo.CreateLoan(ctx, models.Loan{UserID: 1, BookID: 3, LoanDate: models.NewDate(2024, time.January, 1)})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
	// the availability flip must not survive the failed insert
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func loanRows(loanDate time.Time, returned bool) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "usuario_id", "livro_id", "data_emprestimo", "data_devolucao", "devolvido"}).
		AddRow(1, 1, 3, loanDate, nil, returned)
}

func TestRegisterReturn_Success(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()
	loanDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	returnDate := models.NewDate(2024, time.January, 10)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM emprestimo").
		WithArgs(int64(1)).
		WillReturnRows(loanRows(loanDate, false))
	mock.ExpectExec("UPDATE emprestimo").
		WithArgs(int64(1), returnDate).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE livro").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	closed, err := repo.RegisterReturn(ctx, 1, returnDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !closed.Returned {
		t.Error("expected loan to be returned")
	}
	if closed.ReturnDate == nil || closed.ReturnDate.String() != "2024-01-10" {
		t.Errorf("unexpected return date: %v", closed.ReturnDate)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestRegisterReturn_LoanNotFound(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM emprestimo").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.RegisterReturn(ctx, 42, models.NewDate(2024, time.January, 10))
	if !errors.Is(err, ErrLoanNotFound) {
		t.Fatalf("expected ErrLoanNotFound, got %v", err)
	}
}

func TestRegisterReturn_AlreadyReturned(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()
	loanDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM emprestimo").
		WithArgs(int64(1)).
		WillReturnRows(loanRows(loanDate, true))
	mock.ExpectRollback()

	_, err := repo.RegisterReturn(ctx, 1, models.NewDate(2024, time.January, 10))
	if !errors.Is(err, ErrLoanAlreadyReturned) {
		t.Fatalf("expected ErrLoanAlreadyReturned, got %v", err)
	}
}

func TestRegisterReturn_BeforeLoanDate(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()
	loanDate := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM emprestimo").
		WithArgs(int64(1)).
		WillReturnRows(loanRows(loanDate, false))
	mock.ExpectRollback()

	_, err := repo.RegisterReturn(ctx, 1, models.NewDate(2024, time.January, 1))
	if !errors.Is(err, ErrReturnBeforeLoanDate) {
		t.Fatalf("expected ErrReturnBeforeLoanDate, got %v", err)
	}
}

func TestGetAllLoans_Success(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()
	loanDate := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	returnDate := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.
		NewRows([]string{"id", "username", "titulo", "data_emprestimo", "data_devolucao", "devolvido"}).
		AddRow(1, "ana", "Dune", loanDate, returnDate, true).
		AddRow(2, "bruno", "Hyperion", loanDate, nil, false)

	mock.ExpectQuery("SELECT (.+) FROM emprestimo").
		WillReturnRows(rows)

	loans, err := repo.GetAllLoans(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 2 {
		t.Fatalf("expected 2 loans, got %d", len(loans))
	}
	if loans[0].ReturnDate == nil || loans[0].ReturnDate.String() != "2024-01-10" {
		t.Errorf("unexpected first return date: %v", loans[0].ReturnDate)
	}
	if loans[1].ReturnDate != nil {
		t.Errorf("open loan must have nil return date, got %v", loans[1].ReturnDate)
	}
}

func TestGetOverdueLoans_PassesCutoff(t *testing.T) {
	repo, mock, db := newTestLoanRepo(t)
	defer db.Close()

	ctx := context.Background()
	cutoff := models.NewDate(2024, time.February, 1)

	mock.ExpectQuery("SELECT (.+) FROM emprestimo").
		WithArgs(cutoff).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "titulo", "data_emprestimo", "data_devolucao", "devolvido"}))

	loans, err := repo.GetOverdueLoans(ctx, cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loans) != 0 {
		t.Fatalf("expected no loans, got %d", len(loans))
	}
}
