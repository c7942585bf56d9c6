package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/store"
	"github.com/pfalcao/go-biblioteca/models"
)

const (
	maxTitleLen  = 120
	maxAuthorLen = 80
	minBookYear  = 1000
	maxBookYear  = 2100
)

// catalogService is the concrete implementation of CatalogService. It owns
// the field-level validation of catalog entries; conflicts and not-found
// conditions surface from the repository as store sentinels.
type catalogService struct {
	bookRepository store.BookRepository
	logger         *logger.Logger
}

func NewCatalogService(bookRepository store.BookRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		bookRepository: bookRepository,
		logger:         logger,
	}
}

// CreateBook validates and persists a new catalog entry.
//
// Returns the persisted book (with a server-assigned BookID) or a validation
// sentinel: [ErrValidationTitle], [ErrValidationAuthor], [ErrValidationYear].
func (c *catalogService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := validateBookFields(book.Title, book.Author, book.Year); err != nil {
		log.Error().Str("titulo", book.Title).Msg("invalid book data")
		return models.Book{}, err
	}

	createdBook, err := c.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("titulo", book.Title).Msg("book creation ended with error")
		return models.Book{}, fmt.Errorf("book creation ended with error: %w", err)
	}

	return createdBook, nil
}

func (c *catalogService) GetBook(ctx context.Context, bookID int64) (models.Book, error) {
	book, err := c.bookRepository.GetBook(ctx, bookID)
	if err != nil {
		return models.Book{}, fmt.Errorf("book lookup ended with error: %w", err)
	}

	return book, nil
}

func (c *catalogService) ListBooks(ctx context.Context, onlyAvailable bool) ([]models.Book, error) {
	books, err := c.bookRepository.GetAllBooks(ctx, onlyAvailable)
	if err != nil {
		return nil, fmt.Errorf("listing books ended with error: %w", err)
	}

	return books, nil
}

// UpdateBook applies a partial update. Supplied fields are validated against
// the same bounds as CreateBook; nil fields are left untouched.
//
// Returns [ErrInvalidDataProvided] when the update carries no fields at all.
func (c *catalogService) UpdateBook(ctx context.Context, bookID int64, update models.BookUpdate) error {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return ErrInvalidDataProvided
	}
	if err := validateBookUpdate(update); err != nil {
		log.Error().Int64("id", bookID).Msg("invalid book update data")
		return err
	}

	if err := c.bookRepository.UpdateBook(ctx, bookID, update); err != nil {
		log.Err(err).Int64("id", bookID).Msg("book update ended with error")
		return fmt.Errorf("book update ended with error: %w", err)
	}

	return nil
}

// DeleteBook removes a catalog entry. Books referenced by loan records are
// never deleted — the repository rejects those with [store.ErrBookHasLoans].
func (c *catalogService) DeleteBook(ctx context.Context, bookID int64) error {
	log := logger.FromContext(ctx)

	if err := c.bookRepository.DeleteBook(ctx, bookID); err != nil {
		log.Err(err).Int64("id", bookID).Msg("book deletion ended with error")
		return fmt.Errorf("book deletion ended with error: %w", err)
	}

	return nil
}

func validateBookFields(title, author string, year int) error {
	if title == "" || utf8.RuneCountInString(title) > maxTitleLen {
		return ErrValidationTitle
	}
	if author == "" || utf8.RuneCountInString(author) > maxAuthorLen {
		return ErrValidationAuthor
	}
	if year < minBookYear || year > maxBookYear {
		return ErrValidationYear
	}
	return nil
}

func validateBookUpdate(update models.BookUpdate) error {
	if update.Title != nil && (*update.Title == "" || utf8.RuneCountInString(*update.Title) > maxTitleLen) {
		return ErrValidationTitle
	}
	if update.Author != nil && (*update.Author == "" || utf8.RuneCountInString(*update.Author) > maxAuthorLen) {
		return ErrValidationAuthor
	}
	if update.Year != nil && (*update.Year < minBookYear || *update.Year > maxBookYear) {
		return ErrValidationYear
	}
	return nil
}
