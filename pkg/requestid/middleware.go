package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

const (
	Header      = "X-Request-ID"
	maxIDLength = 128
)

var validID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware attaches a request id to the request context and response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !IsValid(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// IsValid reports whether id may be reused as a client-supplied request id.
func IsValid(id string) bool {
	if id == "" || len(id) > maxIDLength {
		return false
	}
	return validID.MatchString(id)
}

// Propagate copies the request id from the request context to its headers,
// for outgoing calls made on behalf of an incoming request.
func Propagate(r *http.Request) {
	if id := FromContext(r.Context()); id != "" && r.Header.Get(Header) == "" {
		r.Header.Set(Header, id)
	}
}
