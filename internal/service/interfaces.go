package service

import (
	"context"

	"github.com/pfalcao/go-biblioteca/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	ListUsers(ctx context.Context) ([]models.UserListItem, error)
}

type CatalogService interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	GetBook(ctx context.Context, bookID int64) (models.Book, error)
	ListBooks(ctx context.Context, onlyAvailable bool) ([]models.Book, error)
	UpdateBook(ctx context.Context, bookID int64, update models.BookUpdate) error
	DeleteBook(ctx context.Context, bookID int64) error
}

type LoanService interface {
	CreateLoan(ctx context.Context, loan models.Loan) (models.Loan, error)
	RegisterReturn(ctx context.Context, loanID int64, returnDate models.Date) (models.Loan, error)
	ListLoans(ctx context.Context) ([]models.LoanListItem, error)
	ListOverdueLoans(ctx context.Context) ([]models.LoanListItem, error)
}
