package middleware

import (
	"io"
	"net/http"
)

// LimitRequestBody caps what a handler may read from the body at maxBytes, so an
// oversized telemetry batch fails decoding instead of being buffered. Whatever
// the handler left unread is drained afterwards, up to the same cap, and the
// body is closed so keep-alive connections can be reused.
func LimitRequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			body := r.Body
			r.Body = http.MaxBytesReader(w, body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, io.LimitReader(body, maxBytes))
			_ = body.Close()
		})
	}
}
