package clientip

import "net/http"

// Middleware stores the resolved client IP in the request context.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	res := newResolver(opts)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithContext(r.Context(), res.resolve(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
