package models

// Book is a catalog entry. JSON field names follow the public API contract
// (Portuguese wire names inherited from the original system).
type Book struct {
	// BookID is the internal unique identifier of the book.
	BookID int64 `json:"id"`

	// Title of the book, required, at most 120 characters.
	Title string `json:"titulo"`

	// Author of the book, required, at most 80 characters.
	Author string `json:"autor"`

	// Year of publication, in the range [1000, 2100].
	Year int `json:"ano"`

	// Available reports that no open loan currently references the book.
	// Mutated only by the loan lifecycle, inside the same transaction that
	// creates or closes the loan.
	Available bool `json:"disponivel"`
}

// BookUpdate describes a partial update of a catalog entry.
// Nil fields are left untouched.
type BookUpdate struct {
	Title  *string `json:"titulo"`
	Author *string `json:"autor"`
	Year   *int    `json:"ano"`
}

// Empty reports whether the update would change nothing.
func (u BookUpdate) Empty() bool {
	return u.Title == nil && u.Author == nil && u.Year == nil
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "livro"
}
