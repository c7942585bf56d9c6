package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/models"
)

func (h *Handler) booksPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	books, err := h.services.CatalogService.ListBooks(r.Context(), false)
	if err != nil {
		log.Err(err).Msg("error listing books for page")
		h.render(w, "book_list.html", pageData{Error: "erro ao carregar o acervo"})
		return
	}

	h.render(w, "book_list.html", pageData{Books: books, CSRF: h.csrfForPage(r)})
}

func (h *Handler) bookNewPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "book_form.html", pageData{CSRF: h.csrfForPage(r)})
}

func (h *Handler) bookNewSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	book, ok := h.bookFromForm(w, r)
	if !ok {
		return
	}

	if _, err := h.services.CatalogService.CreateBook(r.Context(), book); err != nil {
		log.Err(err).Str("titulo", book.Title).Msg("page book creation failed")
		h.render(w, "book_form.html", pageData{
			Error: "dados invalidos: verifique titulo, autor e ano",
			Book:  &book,
			CSRF:  h.csrfForPage(r),
		})
		return
	}

	http.Redirect(w, r, "/livros", http.StatusSeeOther)
}

func (h *Handler) bookEditPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	book, err := h.services.CatalogService.GetBook(r.Context(), bookID)
	if err != nil {
		log.Err(err).Int64("id", bookID).Msg("error loading book for edit page")
		http.NotFound(w, r)
		return
	}

	h.render(w, "book_form.html", pageData{Book: &book, CSRF: h.csrfForPage(r)})
}

func (h *Handler) bookEditSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	book, ok := h.bookFromForm(w, r)
	if !ok {
		return
	}
	book.BookID = bookID

	update := models.BookUpdate{Title: &book.Title, Author: &book.Author, Year: &book.Year}
	if err := h.services.CatalogService.UpdateBook(r.Context(), bookID, update); err != nil {
		log.Err(err).Int64("id", bookID).Msg("page book update failed")
		h.render(w, "book_form.html", pageData{
			Error: "dados invalidos: verifique titulo, autor e ano",
			Book:  &book,
			CSRF:  h.csrfForPage(r),
		})
		return
	}

	http.Redirect(w, r, "/livros", http.StatusSeeOther)
}

func (h *Handler) bookDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if !h.checkCSRF(w, r) {
		return
	}

	bookID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := h.services.CatalogService.DeleteBook(r.Context(), bookID); err != nil {
		log.Err(err).Int64("id", bookID).Msg("page book deletion failed")

		books, listErr := h.services.CatalogService.ListBooks(r.Context(), false)
		if listErr != nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		h.render(w, "book_list.html", pageData{
			Error: "o livro nao pode ser removido: existem emprestimos registrados",
			Books: books,
			CSRF:  h.csrfForPage(r),
		})
		return
	}

	http.Redirect(w, r, "/livros", http.StatusSeeOther)
}

// bookFromForm parses and CSRF-checks a submitted book form. When it reports
// false a response has already been written.
func (h *Handler) bookFromForm(w http.ResponseWriter, r *http.Request) (models.Book, bool) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return models.Book{}, false
	}
	if !h.checkCSRF(w, r) {
		return models.Book{}, false
	}

	year, _ := strconv.Atoi(r.PostFormValue("ano"))
	return models.Book{
		Title:  r.PostFormValue("titulo"),
		Author: r.PostFormValue("autor"),
		Year:   year,
	}, true
}
