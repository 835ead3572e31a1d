package payment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// Handler exposes running-account payments.
type Handler struct {
	service Service
	views   view.Renderer
}

func NewHandler(service Service, views view.Renderer) *Handler {
	return &Handler{service: service, views: views}
}

// RegisterRoutes mounts the payment routes with their own session guards.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.With(session.RequireSessionJSON).Post("/registrar_pago_cc", h.recordPayment)
	r.With(session.RequireSession).Get("/cuentas_corrientes", h.outstanding)
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	req := PaymentRequest{
		SaleID:   r.FormValue("venta_id"),
		Customer: r.FormValue("cliente"),
		Amount:   r.FormValue("monto"),
		Method:   r.FormValue("metodo_pago"),
		Notes:    r.FormValue("observaciones"),
	}
	if id := session.IdentityFrom(r.Context()); id != nil {
		req.Seller = id.Username
	}

	_, err := h.service.RecordPayment(r.Context(), req)
	switch {
	case err == nil:
		respond(w, http.StatusOK, statusResponse{Success: true, Message: "Pago registrado correctamente"})
	case errors.Is(err, ErrInvalidSale), errors.Is(err, ErrInvalidAmount):
		respond(w, http.StatusBadRequest, statusResponse{Message: err.Error()})
	case errors.Is(err, ErrSaleNotFound):
		respond(w, http.StatusNotFound, statusResponse{Message: err.Error()})
	default:
		respond(w, http.StatusInternalServerError, statusResponse{Message: err.Error()})
	}
}

type outstandingPage struct {
	Debts []*Outstanding
	Total decimal.Decimal
	Error string
}

func (h *Handler) outstanding(w http.ResponseWriter, r *http.Request) {
	data := outstandingPage{}
	debts, err := h.service.ListOutstanding(r.Context())
	if err != nil {
		data.Error = "Error de base de datos: " + err.Error()
	}
	data.Debts = debts
	for _, d := range debts {
		data.Total = data.Total.Add(d.Balance)
	}
	h.views.Render(w, http.StatusOK, "cuentas_corrientes.html", session.Page(w, r, data))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
