package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same username already exists.
	ErrLoginAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookNotFound is returned when a query or update targets a book id
	// that does not exist in the catalog.
	ErrBookNotFound = errors.New("book was not found")

	// ErrBookUnavailable is returned when a loan is requested for a book whose
	// availability flag is already false, i.e. an open loan references it.
	ErrBookUnavailable = errors.New("book is not available")

	// ErrBookHasLoans is returned when a book deletion is rejected because
	// loan records still reference the book. Loans are never deleted, so the
	// catalog entry has to stay.
	ErrBookHasLoans = errors.New("book is referenced by loan records")

	// ErrLoanNotFound is returned when a return targets a loan id that does
	// not exist.
	ErrLoanNotFound = errors.New("loan was not found")

	// ErrLoanAlreadyReturned is returned when a return targets a loan that is
	// already closed. A loan transitions Open -> Closed exactly once.
	ErrLoanAlreadyReturned = errors.New("loan is already returned")

	// ErrReturnBeforeLoanDate is returned when the supplied return date
	// precedes the loan date of the targeted loan.
	ErrReturnBeforeLoanDate = errors.New("return date precedes loan date")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty update with no SET clauses).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
