package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)

		r.Get("/api/livros", h.listBooks)
		r.Get("/api/livros/{id}", h.getBook)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/livros", h.createBook)
		r.Put("/api/livros/{id}", h.updateBook)
		r.Delete("/api/livros/{id}", h.deleteBook)

		r.Get("/api/emprestimos", h.listLoans)
		r.Post("/api/emprestimos", h.createLoan)
		r.Put("/api/emprestimos/{id}/devolucao", h.registerReturn)

		r.Get("/api/usuarios", h.listUsers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
