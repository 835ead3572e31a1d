package inventory

import (
	"net/http"
	"strconv"

	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the product page.
type Handler struct {
	service Service
	views   view.Renderer
}

func NewHandler(service Service, views view.Renderer) *Handler {
	return &Handler{service: service, views: views}
}

// RegisterRoutes mounts /productos. The caller applies the admin guard.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/productos", h.productsPage)
	r.Post("/productos", h.saveProduct)
}

type productsPage struct {
	Products []*Product
	Editing  *Product
	Message  string
}

func (h *Handler) productsPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "")
}

func (h *Handler) saveProduct(w http.ResponseWriter, r *http.Request) {
	editID, _ := strconv.ParseInt(r.URL.Query().Get("editar"), 10, 64)
	form := ProductForm{
		Name:     r.FormValue("nombre"),
		Cost:     r.FormValue("costo"),
		Price:    r.FormValue("precio"),
		Stock:    r.FormValue("stock"),
		Brand:    r.FormValue("marca"),
		Category: r.FormValue("rubro"),
	}

	var msg string
	p, err := h.service.SaveProduct(r.Context(), editID, form)
	switch {
	case err != nil:
		msg = "Error: " + err.Error()
	case editID != 0:
		msg = "Producto actualizado con éxito."
	default:
		msg = "¡Producto registrado con éxito! Precio de venta: $" + p.Price.StringFixed(2)
	}
	h.render(w, r, msg)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, msg string) {
	data := productsPage{Message: msg}

	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		data.Message = "Error: " + err.Error()
	}
	data.Products = products

	if id, err := strconv.ParseInt(r.URL.Query().Get("editar"), 10, 64); err == nil {
		if p, err := h.service.GetProduct(r.Context(), id); err == nil {
			data.Editing = p
		}
	}
	h.views.Render(w, http.StatusOK, "productos.html", session.Page(w, r, data))
}
