package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	views   view.Renderer
}

func NewHandler(service Service, views view.Renderer) *Handler {
	return &Handler{service: service, views: views}
}

// RegisterRoutes mounts the account pages. The caller applies the admin guard.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/usuarios", h.listUsers)
	router.Post("/usuarios/crear", h.createUser)
	router.Post("/usuarios/editar/{id}", h.updateUser)
	router.Get("/usuarios/eliminar/{id}", h.deleteUser)
}

type listPage struct {
	Users []*User
	Error string
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	data := listPage{Users: users}
	if err != nil {
		data.Error = "Error al cargar usuarios: " + err.Error()
	}
	h.views.Render(w, http.StatusOK, "usuarios.html", session.Page(w, r, data))
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.CreateUser(r.Context(),
		r.FormValue("usuario"), r.FormValue("password"), r.FormValue("rol"))
	if err != nil {
		view.SetFlash(w, "error", "Error al crear usuario: "+err.Error())
	} else {
		view.SetFlash(w, "success", "Usuario creado exitosamente")
	}
	http.Redirect(w, r, "/usuarios", http.StatusSeeOther)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	err = h.service.UpdateUser(r.Context(), id,
		r.FormValue("usuario"), r.FormValue("password"), r.FormValue("rol"))
	if err != nil {
		view.SetFlash(w, "error", "Error al actualizar usuario: "+err.Error())
	} else {
		view.SetFlash(w, "success", "Usuario actualizado exitosamente")
	}
	http.Redirect(w, r, "/usuarios", http.StatusSeeOther)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	switch err := h.service.DeleteUser(r.Context(), id); {
	case errors.Is(err, ErrNotFound):
		view.SetFlash(w, "error", "El usuario no existe")
	case err != nil:
		view.SetFlash(w, "error", "Error al eliminar usuario: "+err.Error())
	default:
		view.SetFlash(w, "success", "Usuario eliminado exitosamente")
	}
	http.Redirect(w, r, "/usuarios", http.StatusSeeOther)
}
