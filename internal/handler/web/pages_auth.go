package web

import (
	"net/http"

	"github.com/pfalcao/go-biblioteca/internal/logger"
	"github.com/pfalcao/go-biblioteca/models"
)

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "login.html", pageData{})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.render(w, "login.html", pageData{Error: "formulario invalido"})
		return
	}

	user := models.User{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	foundUser, err := h.services.AuthService.Login(r.Context(), user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("page login failed")
		h.render(w, "login.html", pageData{Error: "usuario ou senha incorretos"})
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.render(w, "login.html", pageData{Error: "erro interno, tente novamente"})
		return
	}

	h.setSessionCookie(w, token.SignedString)
	http.Redirect(w, r, "/livros", http.StatusSeeOther)
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, "register.html", pageData{})
}

func (h *Handler) registerSubmit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.render(w, "register.html", pageData{Error: "formulario invalido"})
		return
	}

	user := models.User{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("page registration failed")
		h.render(w, "register.html", pageData{Error: "cadastro invalido: verifique usuario e senha"})
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.render(w, "register.html", pageData{Error: "erro interno, tente novamente"})
		return
	}

	h.setSessionCookie(w, token.SignedString)
	http.Redirect(w, r, "/livros", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if !h.checkCSRF(w, r) {
		return
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
