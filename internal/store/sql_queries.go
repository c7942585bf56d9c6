package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/pfalcao/go-biblioteca/models"
)

const (
	createUser = `INSERT INTO usuario (username, password_hash)
    VALUES ($1, $2)
    RETURNING id, username, password_hash, created_at;`

	findUserByUsername = `SELECT id, username, password_hash, created_at
    FROM usuario
    WHERE username = $1;`

	createBook = `INSERT INTO livro (titulo, autor, ano, disponivel)
    VALUES ($1, $2, $3, TRUE)
    RETURNING id;`

	getBook = `SELECT id, titulo, autor, ano, disponivel
    FROM livro
    WHERE id = $1;`

	deleteBook = `DELETE FROM livro
    WHERE id = $1;`

	bookHasLoans = `SELECT EXISTS (
        SELECT 1 FROM emprestimo WHERE livro_id = $1
    );`

	bookExists = `SELECT EXISTS (
        SELECT 1 FROM livro WHERE id = $1
    );`

	// reserveBook is the atomic check-and-flip of the availability flag:
	// zero affected rows means the book is either missing or already loaned.
	reserveBook = `UPDATE livro
    SET disponivel = FALSE
    WHERE id = $1 AND disponivel = TRUE;`

	releaseBook = `UPDATE livro
    SET disponivel = TRUE
    WHERE id = $1;`

	createLoan = `INSERT INTO emprestimo (usuario_id, livro_id, data_emprestimo, devolvido)
    VALUES ($1, $2, $3, FALSE)
    RETURNING id;`

	getLoanForUpdate = `SELECT id, usuario_id, livro_id, data_emprestimo, data_devolucao, devolvido
    FROM emprestimo
    WHERE id = $1
    FOR UPDATE;`

	closeLoan = `UPDATE emprestimo
    SET data_devolucao = $2, devolvido = TRUE
    WHERE id = $1;`

	getAllLoans = `SELECT e.id, u.username, l.titulo, e.data_emprestimo, e.data_devolucao, e.devolvido
    FROM emprestimo e
    JOIN usuario u ON u.id = e.usuario_id
    JOIN livro l ON l.id = e.livro_id
    ORDER BY e.id;`

	getOverdueLoans = `SELECT e.id, u.username, l.titulo, e.data_emprestimo, e.data_devolucao, e.devolvido
    FROM emprestimo e
    JOIN usuario u ON u.id = e.usuario_id
    JOIN livro l ON l.id = e.livro_id
    WHERE e.devolvido = FALSE AND e.data_emprestimo < $1
    ORDER BY e.data_emprestimo;`

	getAllUsers = `SELECT id, username
    FROM usuario
    ORDER BY username;`
)

// buildSelectBooksQuery builds the catalog listing query, optionally
// restricted to available books only.
func buildSelectBooksQuery(onlyAvailable bool) (string, []any, error) {
	builder := sq.
		Select("id", "titulo", "autor", "ano", "disponivel").
		From("livro").
		OrderBy("id").
		PlaceholderFormat(sq.Dollar)

	if onlyAvailable {
		builder = builder.Where(sq.Eq{"disponivel": true})
	}

	return builder.ToSql()
}

// buildUpdateBookQuery builds a partial UPDATE of a catalog entry from the
// non-nil fields of update. Returns ErrBuildingSQLQuery when the update is
// empty.
func buildUpdateBookQuery(bookID int64, update models.BookUpdate) (string, []any, error) {
	if update.Empty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := sq.
		Update("livro").
		Where(sq.Eq{"id": bookID}).
		PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		builder = builder.Set("titulo", *update.Title)
	}
	if update.Author != nil {
		builder = builder.Set("autor", *update.Author)
	}
	if update.Year != nil {
		builder = builder.Set("ano", *update.Year)
	}

	return builder.ToSql()
}
