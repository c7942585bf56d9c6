package store

import (
	"context"

	"github.com/pfalcao/go-biblioteca/models"
)

// UserRepository persists librarian accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.UserListItem, error)
}

// BookRepository persists catalog entries.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	GetBook(ctx context.Context, bookID int64) (models.Book, error)
	GetAllBooks(ctx context.Context, onlyAvailable bool) ([]models.Book, error)
	UpdateBook(ctx context.Context, bookID int64, update models.BookUpdate) error
	DeleteBook(ctx context.Context, bookID int64) error
}

// LoanRepository persists the loan lifecycle. CreateLoan and RegisterReturn
// each run as a single transaction so that the loan row and the referenced
// book's availability flag can never desynchronize.
type LoanRepository interface {
	CreateLoan(ctx context.Context, loan models.Loan) (models.Loan, error)
	RegisterReturn(ctx context.Context, loanID int64, returnDate models.Date) (models.Loan, error)
	GetAllLoans(ctx context.Context) ([]models.LoanListItem, error)
	GetOverdueLoans(ctx context.Context, loanedBefore models.Date) ([]models.LoanListItem, error)
}
