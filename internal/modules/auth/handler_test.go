package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/georgemunganga/mostrador/internal/session"
	"github.com/georgemunganga/mostrador/internal/view"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedPage struct {
	status int
	name   string
	page   view.Page
}

type pageRecorder struct{ last *recordedPage }

func (p *pageRecorder) Render(w http.ResponseWriter, status int, name string, data view.Page) {
	p.last = &recordedPage{status: status, name: name, page: data}
	w.WriteHeader(status)
}

func newRouter(t *testing.T) (*chi.Mux, *pageRecorder) {
	t.Helper()
	views := &pageRecorder{}
	sessions := session.NewManager("handler-test-secret-01", time.Hour, false)
	router := chi.NewRouter()
	router.Use(sessions.Load)
	NewHandler(NewService(newStubUsers(t)), sessions, views).RegisterRoutes(router)
	return router, views
}

func postLogin(router http.Handler, username, password string) *httptest.ResponseRecorder {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandlerStartsSession(t *testing.T) {
	router, views := newRouter(t)

	rec := postLogin(router, "admin", "admin123")
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/menu", rec.Header().Get("Location"))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/menu", nil)
	req.AddCookie(cookies[0])
	menu := httptest.NewRecorder()
	router.ServeHTTP(menu, req)

	assert.Equal(t, http.StatusOK, menu.Code)
	assert.Equal(t, "menu.html", views.last.name)
	assert.Equal(t, "admin", views.last.page.User)
	assert.True(t, views.last.page.Admin)
}

func TestLoginHandlerWrongPassword(t *testing.T) {
	router, views := newRouter(t)

	rec := postLogin(router, "admin", "wrong")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
	assert.Equal(t, "Usuario o contraseña incorrectos", views.last.page.Data.(loginPage).Error)
}

func TestMenuRequiresSession(t *testing.T) {
	router, _ := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/menu", nil))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
