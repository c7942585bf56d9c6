package models

// CreatedResponse is the body returned by create endpoints (HTTP 201).
type CreatedResponse struct {
	// ID of the newly created record.
	ID int64 `json:"id"`
}

// MessageResponse is the body returned by update and delete endpoints.
type MessageResponse struct {
	// Msg is a short human-readable confirmation.
	Msg string `json:"msg"`
}

// ErrorResponse is the body returned on any failed request.
type ErrorResponse struct {
	// Error is a short human-readable description of the failure.
	Error string `json:"error"`
}

// LoanListItem is a loan joined with the borrower's username and the book
// title, as returned by the loan listing endpoint.
type LoanListItem struct {
	// LoanID is the loan identifier.
	LoanID int64 `json:"id"`

	// Username of the borrowing user.
	Username string `json:"usuario"`

	// BookTitle of the borrowed book.
	BookTitle string `json:"livro"`

	// LoanDate is the day the book was handed out.
	LoanDate Date `json:"data_emprestimo"`

	// ReturnDate is the day the book came back, nil while the loan is open.
	ReturnDate *Date `json:"data_devolucao"`

	// Returned marks the loan as closed.
	Returned bool `json:"devolvido"`
}

// UserListItem is the public projection of a user account, as returned by
// the user listing endpoint that feeds the loan form.
type UserListItem struct {
	// UserID is the user identifier.
	UserID int64 `json:"id"`

	// Username is the unique login identifier.
	Username string `json:"username"`
}
