package httpserver

import (
	"log"
	"net/http"
)

// StartHTTP serves the health endpoint the bot's hosting platform probes.
func StartHTTP(addr, healthzBody string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(healthzBody))
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("tsql-bridge bot"))
	})
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}
