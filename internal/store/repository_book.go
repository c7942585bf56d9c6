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

// bookRepository is the PostgreSQL-backed implementation of [BookRepository],
// covering catalog CRUD against the "livro" table.
//
// The availability flag is deliberately out of reach here: only the loan
// repository mutates it, inside the loan transactions.
type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] backed by the provided
// database connection and logger.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook persists a new catalog entry. New books are always created
// available.
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBook, book.Title, book.Author, book.Year)
	if err := row.Scan(&book.BookID); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error creating book")
		return models.Book{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	book.Available = true
	return book, nil
}

// GetBook retrieves one catalog entry by id.
//
// Returns [ErrBookNotFound] when the id does not exist.
func (r *bookRepository) GetBook(ctx context.Context, bookID int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	row := r.db.QueryRowContext(ctx, getBook, bookID)
	if err := row.Scan(&book.BookID, &book.Title, &book.Author, &book.Year, &book.Available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.GetBook").Msg("error scanning book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return book, nil
}

// GetAllBooks lists the catalog ordered by id, optionally restricted to
// available books.
func (r *bookRepository) GetAllBooks(ctx context.Context, onlyAvailable bool) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksQuery(onlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetAllBooks").Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(&book.BookID, &book.Title, &book.Author, &book.Year, &book.Available); err != nil {
			log.Err(err).Str("func", "*bookRepository.GetAllBooks").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		books = append(books, book)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// UpdateBook applies a partial update built from the non-nil fields of
// update.
//
// Error handling:
//   - empty update → [ErrBuildingSQLQuery].
//   - zero affected rows → [ErrBookNotFound].
func (r *bookRepository) UpdateBook(ctx context.Context, bookID int64, update models.BookUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookQuery(bookID, update)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("error executing update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}

// DeleteBook removes a catalog entry.
//
// Deletion is blocked while loan records reference the book: open loans would
// be orphaned and closed loans form the lending history, which is never
// deleted. The explicit pre-check runs inside a transaction and the FK
// constraint (ON DELETE RESTRICT) backs it up against races.
//
// Error handling:
//   - loans reference the book → [ErrBookHasLoans].
//   - unknown id → [ErrBookNotFound].
func (r *bookRepository) DeleteBook(ctx context.Context, bookID int64) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() // no-op after commit

	var hasLoans bool
	if err := tx.QueryRowContext(ctx, bookHasLoans, bookID).Scan(&hasLoans); err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error checking loan references")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if hasLoans {
		return ErrBookHasLoans
	}

	result, err := tx.ExecContext(ctx, deleteBook, bookID)
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return ErrBookHasLoans
		}
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error executing delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
