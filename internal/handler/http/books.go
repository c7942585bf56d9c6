package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/internal/utils"
	"github.com/pfalcao/go-biblioteca/models"
)

// idFromURL parses the {id} path parameter as a positive int64.
func idFromURL(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// listBooks returns the whole catalog. With ?disponivel=true only books
// currently on the shelf are listed.
func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	onlyAvailable := r.URL.Query().Get("disponivel") == "true"

	books, err := h.services.CatalogService.ListBooks(r.Context(), onlyAvailable)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listBooks").Msg("error listing books")
		respondError(w, err)
		return
	}
	if books == nil {
		books = []models.Book{}
	}

	utils.WriteJSON(w, books, http.StatusOK)
}

func (h *Handler) getBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookID, err := idFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	book, err := h.services.CatalogService.GetBook(r.Context(), bookID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getBook").Int64("id", bookID).Msg("error getting book")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, book, http.StatusOK)
}

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var book models.Book
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Err(err).Str("func", "*Handler.createBook").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdBook, err := h.services.CatalogService.CreateBook(r.Context(), book)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createBook").Msg("error creating book")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{ID: createdBook.BookID}, http.StatusCreated)
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookID, err := idFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var update models.BookUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Str("func", "*Handler.updateBook").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.CatalogService.UpdateBook(r.Context(), bookID, update); err != nil {
		log.Err(err).Str("func", "*Handler.updateBook").Int64("id", bookID).Msg("error updating book")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "livro atualizado"}, http.StatusOK)
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	bookID, err := idFromURL(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.services.CatalogService.DeleteBook(r.Context(), bookID); err != nil {
		log.Err(err).Str("func", "*Handler.deleteBook").Int64("id", bookID).Msg("error deleting book")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Msg: "livro removido"}, http.StatusOK)
}
