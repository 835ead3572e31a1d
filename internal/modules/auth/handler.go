package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service  Service
	sessions *session.Manager
	views    view.Renderer
}

func NewHandler(service Service, sessions *session.Manager, views view.Renderer) *Handler {
	return &Handler{service: service, sessions: sessions, views: views}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.loginForm)
	router.Post("/", h.login)
	router.Get("/logout", h.logout)
	router.With(session.RequireSession).Get("/menu", h.menu)
}

type loginPage struct {
	Error    string
	Username string
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, "login.html", session.Page(w, r, loginPage{}))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	id, err := h.service.Login(r.Context(), username, r.FormValue("password"))
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, ErrMissingCredentials) {
			status = http.StatusBadRequest
		} else if !errors.Is(err, ErrInvalidCredentials) {
			status = http.StatusInternalServerError
		}
		h.views.Render(w, status, "login.html", session.Page(w, r, loginPage{Error: err.Error(), Username: username}))
		return
	}

	if err := h.sessions.Start(w, *id); err != nil {
		log.Printf("start session for %s: %v", id.Username, err)
		h.views.Render(w, http.StatusInternalServerError, "login.html",
			session.Page(w, r, loginPage{Error: "Error al autenticar: " + err.Error()}))
		return
	}
	http.Redirect(w, r, "/menu", http.StatusSeeOther)
}

func (h *Handler) menu(w http.ResponseWriter, r *http.Request) {
	h.views.Render(w, http.StatusOK, "menu.html", session.Page(w, r, nil))
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
