package middlewares

import "net/http"

const (
	allowedHeaders = "authorization, x-client-info, apikey, content-type"
	allowedMethods = "GET, POST, DELETE, OPTIONS"
)

// CorsMiddleware allows any origin. Preflight requests are passed on so
// routes can answer them.
func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", allowedHeaders)
		h.Set("Access-Control-Allow-Methods", allowedMethods)

		next.ServeHTTP(w, r)
	})
}
