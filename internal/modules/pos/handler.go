package pos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/georgemunganga/mostrador/internal/modules/customer"
	"github.com/georgemunganga/mostrador/internal/modules/inventory"
	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the sale counter and receipts.
type Handler struct {
	service Service
	views   view.Renderer
}

func NewHandler(service Service, views view.Renderer) *Handler {
	return &Handler{service: service, views: views}
}

// RegisterRoutes mounts the sale routes. The caller applies the session guard.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/venta", h.saleScreen)
	r.Post("/venta", h.registerSale)
	r.Get("/recibo/{venta_id}", h.receipt)
}

type screenPage struct {
	*Screen
	Error   string
	Methods []string
	WalkIn  string
}

func (h *Handler) saleScreen(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	data := screenPage{
		Methods: []string{MethodCash, MethodCard, MethodTransfer, MethodCredit},
		WalkIn:  customer.WalkIn,
	}
	screen, err := h.service.Screen(r.Context(), page)
	if err != nil {
		data.Screen = &Screen{Page: 1}
		data.Error = "Error de base de datos: " + err.Error()
	} else {
		data.Screen = screen
	}
	h.views.Render(w, http.StatusOK, "venta.html", session.Page(w, r, data))
}

type statusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type saleResponse struct {
	Success       bool                 `json:"success"`
	Message       string               `json:"message"`
	Total         string               `json:"total"`
	PaymentMethod string               `json:"forma_pago"`
	Product       string               `json:"producto"`
	Quantity      int                  `json:"cantidad"`
	SaleID        int64                `json:"venta_id"`
	Balance       *string              `json:"saldo_pendiente"`
	Credit        bool                 `json:"es_cuenta_corriente"`
	UpdatedStock  int                  `json:"stock_actualizado"`
	Products      []*inventory.Product `json:"productos"`
}

func (h *Handler) registerSale(w http.ResponseWriter, r *http.Request) {
	req := SaleRequest{
		ProductID:     r.FormValue("producto"),
		Quantity:      r.FormValue("cantidad"),
		PaymentMethod: r.FormValue("forma_pago"),
		Customer:      r.FormValue("cliente"),
		Discount:      r.FormValue("descuento"),
	}
	if id := session.IdentityFrom(r.Context()); id != nil {
		req.Seller = id.Username
	}

	receipt, err := h.service.RegisterSale(r.Context(), req)
	if err != nil {
		var rej *Rejection
		if errors.As(err, &rej) {
			respond(w, http.StatusOK, statusResponse{Message: rej.Reason})
			return
		}
		respond(w, http.StatusInternalServerError, statusResponse{Message: "Error al registrar la venta: " + err.Error()})
		return
	}

	sale := receipt.Sale
	resp := saleResponse{
		Success:       true,
		Message:       "Venta registrada correctamente",
		Total:         sale.Total.StringFixed(2),
		PaymentMethod: sale.PaymentMethod,
		Product:       sale.ProductName,
		Quantity:      sale.Quantity,
		SaleID:        sale.ID,
		Credit:        sale.IsCredit(),
		UpdatedStock:  receipt.StockAfter,
		Products:      receipt.Products,
	}
	if sale.Balance.IsPositive() {
		balance := sale.Balance.StringFixed(2)
		resp.Balance = &balance
	}
	if resp.Products == nil {
		resp.Products = []*inventory.Product{}
	}
	respond(w, http.StatusOK, resp)
}

func (h *Handler) receipt(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "venta_id"), 10, 64)
	if err != nil {
		http.Error(w, ErrSaleNotFound.Error(), http.StatusNotFound)
		return
	}
	sale, err := h.service.GetSale(r.Context(), id)
	if errors.Is(err, ErrSaleNotFound) {
		http.Error(w, ErrSaleNotFound.Error(), http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.views.Render(w, http.StatusOK, "recibo.html", session.Page(w, r, sale))
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
