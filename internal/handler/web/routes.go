package web

import (
	"github.com/go-chi/chi/v5"
)

// Register mounts the page routes on the given router. API routes live under
// /api and are wired separately; everything here serves HTML.
func (h *Handler) Register(router chi.Router) {
	// pages without a session
	router.Group(func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.loginSubmit)
		r.Get("/register", h.registerPage)
		r.Post("/register", h.registerSubmit)
	})

	// pages requiring a valid session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.session)

		r.Get("/", h.booksPage)
		r.Get("/livros", h.booksPage)
		r.Get("/livros/novo", h.bookNewPage)
		r.Post("/livros/novo", h.bookNewSubmit)
		r.Get("/livros/{id}/editar", h.bookEditPage)
		r.Post("/livros/{id}/editar", h.bookEditSubmit)
		r.Post("/livros/{id}/excluir", h.bookDeleteSubmit)

		r.Get("/emprestimos", h.loansPage)
		r.Get("/emprestimos/novo", h.loanNewPage)
		r.Post("/emprestimos/novo", h.loanNewSubmit)
		r.Get("/emprestimos/{id}/devolucao", h.returnFormPage)
		r.Post("/emprestimos/{id}/devolucao", h.returnSubmit)

		r.Post("/logout", h.logout)
	})
}
