package pos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/georgemunganga/mostrador/internal/modules/inventory"
	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	receipt *SaleReceipt
	err     error
	got     SaleRequest
}

func (s *stubService) RegisterSale(_ context.Context, req SaleRequest) (*SaleReceipt, error) {
	s.got = req
	return s.receipt, s.err
}

func (s *stubService) Screen(context.Context, int) (*Screen, error) { return &Screen{Page: 1}, nil }

func (s *stubService) GetSale(_ context.Context, id int64) (*Sale, error) {
	if id == 55 {
		return &Sale{ID: 55}, nil
	}
	return nil, ErrSaleNotFound
}

type nopRenderer struct{ page string }

func (n *nopRenderer) Render(w http.ResponseWriter, status int, page string, _ view.Page) {
	n.page = page
	w.WriteHeader(status)
}

func serve(svc Service, req *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	NewHandler(svc, &nopRenderer{}).RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postSale(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/venta", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(session.WithIdentity(req.Context(), &session.Identity{Username: "ana", Role: session.RoleSeller}))
}

func TestRegisterSaleResponse(t *testing.T) {
	svc := &stubService{receipt: &SaleReceipt{
		Sale: &Sale{ID: 55, ProductName: "Yerba", Quantity: 3, Total: dec("290"),
			PaymentMethod: MethodCash, Balance: dec("0")},
		StockAfter: 7,
	}}
	rec := serve(svc, postSale(url.Values{"producto": {"1"}, "cantidad": {"3"}, "descuento": {"10"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"success": true,
		"message": "Venta registrada correctamente",
		"total": "290.00",
		"forma_pago": "Efectivo",
		"producto": "Yerba",
		"cantidad": 3,
		"venta_id": 55,
		"saldo_pendiente": null,
		"es_cuenta_corriente": false,
		"stock_actualizado": 7,
		"productos": []
	}`, rec.Body.String())
	assert.Equal(t, "ana", svc.got.Seller)
	assert.Equal(t, "10", svc.got.Discount)
}

func TestRegisterSaleCreditResponseCarriesBalance(t *testing.T) {
	svc := &stubService{receipt: &SaleReceipt{
		Sale: &Sale{ID: 56, Total: dec("290"), PaymentMethod: MethodCredit, Balance: dec("290")},
		Products: []*inventory.Product{{ID: 1, Name: "Yerba", Stock: 7}},
	}}
	rec := serve(svc, postSale(url.Values{"producto": {"1"}, "cantidad": {"3"}}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"saldo_pendiente":"290.00"`)
	assert.Contains(t, rec.Body.String(), `"es_cuenta_corriente":true`)
}

func TestRegisterSaleRejectionAndFailure(t *testing.T) {
	rec := serve(&stubService{err: reject("La cantidad debe ser mayor a cero")}, postSale(url.Values{}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"La cantidad debe ser mayor a cero"}`, rec.Body.String())

	rec = serve(&stubService{err: errors.New("connection refused")}, postSale(url.Values{}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Error al registrar la venta: connection refused"}`, rec.Body.String())
}

func TestReceipt(t *testing.T) {
	rec := serve(&stubService{}, httptest.NewRequest(http.MethodGet, "/recibo/55", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(&stubService{}, httptest.NewRequest(http.MethodGet, "/recibo/99", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Venta no encontrada")

	rec = serve(&stubService{}, httptest.NewRequest(http.MethodGet, "/recibo/abc", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
