package middlewares

import (
	"encoding/json"
	"log"
	"net/http"
	"runtime/debug"
)

func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("panic recovered: %v\n", err)
				log.Printf("stack trace: %s\n", debug.Stack())

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)

				errorResponse := map[string]string{
					"error": "Internal Server Error",
				}

				json.NewEncoder(w).Encode(errorResponse)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
