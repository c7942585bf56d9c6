package models

// Loan links one user to one book for a bounded period.
//
// A loan is Open while Returned is false and ReturnDate is nil, and Closed
// once a return has been registered. The transition is one-way: a closed loan
// can never be reopened, and loans are never deleted.
type Loan struct {
	// LoanID is the internal unique identifier of the loan.
	LoanID int64 `json:"id"`

	// UserID references the borrowing user.
	UserID int64 `json:"usuario_id"`

	// BookID references the borrowed book.
	BookID int64 `json:"livro_id"`

	// LoanDate is the day the book was handed out.
	LoanDate Date `json:"data_emprestimo"`

	// ReturnDate is the day the book came back, nil while the loan is open.
	ReturnDate *Date `json:"data_devolucao"`

	// Returned marks the loan as closed.
	Returned bool `json:"devolvido"`
}

// Open reports whether the loan has not been returned yet.
func (l Loan) Open() bool {
	return !l.Returned
}

// ReturnRequest is the body of a return registration.
type ReturnRequest struct {
	// ReturnDate is the day the book came back.
	ReturnDate Date `json:"data_devolucao"`
}

// TableName returns the name of the database table
// associated with the Loan model.
func (l Loan) TableName() string {
	return "emprestimo"
}
