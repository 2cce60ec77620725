package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/2beens/adaptivecoach/internal/telemetry/metrics"
	"github.com/2beens/adaptivecoach/pkg"

	log "github.com/sirupsen/logrus"
)

// PanicRecovery keeps a panicking coaching handler from taking the API down.
// The client gets a 500 unless the handler already started its response.
func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			resp := &responseWriter{ResponseWriter: respWriter, statusCode: http.StatusOK}
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				route := routeTemplate(req)
				log.WithFields(log.Fields{
					"route":  route,
					"method": req.Method,
				}).Errorf("api: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())
				if metricsManager != nil {
					metricsManager.CounterHandlerPanics.WithLabelValues(route).Inc()
				}
				if !resp.written {
					pkg.WriteJSON(resp, map[string]string{"error": "internal error"}, http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(resp, req)
		})
	}
}
