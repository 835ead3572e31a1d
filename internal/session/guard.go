package session

import (
	"encoding/json"
	"net/http"

	"github.com/georgemunganga/mostrador/internal/view"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allowed Decision = iota
	Unauthenticated
	Forbidden
)

// Authorize checks id against the role a route requires. An empty role only
// requires a session.
func Authorize(id *Identity, required Role) Decision {
	if id == nil {
		return Unauthenticated
	}
	if required != "" && id.Role != required {
		return Forbidden
	}
	return Allowed
}

// RequireSession redirects anonymous requests to the login page.
func RequireSession(next http.Handler) http.Handler {
	return guard("", next)
}

// RequireAdmin redirects anything but an admin session to the login page.
func RequireAdmin(next http.Handler) http.Handler {
	return guard(RoleAdmin, next)
}

func guard(required Role, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch Authorize(IdentityFrom(r.Context()), required) {
		case Allowed:
			next.ServeHTTP(w, r)
		case Forbidden:
			view.SetFlash(w, "error", "Acceso no autorizado")
			http.Redirect(w, r, "/", http.StatusSeeOther)
		default:
			http.Redirect(w, r, "/", http.StatusSeeOther)
		}
	})
}

// RequireSessionJSON answers 401 with a JSON status body for anonymous requests.
func RequireSessionJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Authorize(IdentityFrom(r.Context()), "") != Allowed {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "No autorizado"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Page wraps data with the request identity and any pending flash message.
func Page(w http.ResponseWriter, r *http.Request, data interface{}) view.Page {
	p := view.Page{Flash: view.PopFlash(w, r), Data: data}
	if id := IdentityFrom(r.Context()); id != nil {
		p.User = id.Username
		p.Admin = id.IsAdmin()
	}
	return p
}
