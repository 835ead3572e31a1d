package customer

import (
	"errors"
	"net/http"

	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the customer page.
type Handler struct {
	service Service
	views   view.Renderer
}

func NewHandler(service Service, views view.Renderer) *Handler {
	return &Handler{service: service, views: views}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/clientes", h.listCustomers)
	r.Post("/clientes", h.createCustomer)
}

type listPage struct {
	Customers []*Customer
	Error     string
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.service.List(r.Context())
	data := listPage{Customers: customers}
	if err != nil {
		data.Error = "Error al cargar clientes: " + err.Error()
	}
	h.views.Render(w, http.StatusOK, "clientes.html", session.Page(w, r, data))
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	_, err := h.service.Register(r.Context(), r.FormValue("nombre"), r.FormValue("telefono"))
	switch {
	case errors.Is(err, ErrMissingFields):
		// incomplete form: show the list again, as the page does on a plain GET
		h.listCustomers(w, r)
		return
	case err != nil:
		view.SetFlash(w, "error", "Error al registrar cliente: "+err.Error())
	default:
		view.SetFlash(w, "success", "Cliente registrado")
	}
	http.Redirect(w, r, "/clientes", http.StatusSeeOther)
}
