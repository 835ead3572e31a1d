package report

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
)

// Handler exposes the sales report.
type Handler struct {
	service Service
	views   view.Renderer
}

func NewHandler(service Service, views view.Renderer) *Handler {
	return &Handler{service: service, views: views}
}

// RegisterRoutes mounts the report routes. The caller applies the session guard.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ventas", h.salesReport)
	r.Get("/ventas/exportar", h.export)
}

func filterFrom(r *http.Request) Filter {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	return Filter{Seller: q.Get("vendedor"), From: q.Get("desde"), To: q.Get("hasta"), Page: page}
}

type reportPage struct {
	*Report
	Error string
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	f := filterFrom(r)
	rep, err := h.service.Build(r.Context(), f)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidDate) {
			status = http.StatusBadRequest
		}
		f.Page = 1
		data := reportPage{Report: &Report{Filter: f}, Error: err.Error()}
		h.views.Render(w, status, "ventas.html", session.Page(w, r, data))
		return
	}
	h.views.Render(w, http.StatusOK, "ventas.html", session.Page(w, r, reportPage{Report: rep}))
}

const xlsxType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.service.Export(r.Context(), filterFrom(r), &buf); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrInvalidDate) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	name := fmt.Sprintf("ventas_%s.xlsx", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", xlsxType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	buf.WriteTo(w)
}
