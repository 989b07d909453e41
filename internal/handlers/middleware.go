package handlers

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// verifySlackSignature rejects requests not signed with the app signing
// secret. The body is restored for the handlers downstream.
func verifySlackSignature(signingSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewBuffer(body))

			verifier, err := slack.NewSecretsVerifier(r.Header, signingSecret)
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if _, err := verifier.Write(body); err != nil {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			if err := verifier.Ensure(); err != nil {
				log.WithField("path", r.URL.Path).Warn("rejected request with invalid slack signature")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.WithFields(log.Fields{
			"request_id":  middleware.GetReqID(r.Context()),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      ww.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("request served")
	})
}
