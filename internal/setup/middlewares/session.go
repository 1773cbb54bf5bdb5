package middlewares

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/officefund/expense-backend/internal/domain/usecase"
)

// Header names the middleware sets for downstream handlers once the session
// checks out.
const (
	SessionEmailHeader = "SessionEmail"
	SessionRoleHeader  = "SessionRole"
)

// SessionAuth accepts the session token either as the session_token query
// parameter or as a session_token field in a JSON body. The body is read and
// restored so the controller can decode it again.
func SessionAuth(next http.Handler, findSession usecase.FindSessionByTokenRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("session_token")

		if token == "" && r.Body != nil {
			bodyBytes, err := io.ReadAll(r.Body)
			if err == nil {
				r.Body = io.NopCloser(bytes.NewReader(bodyBytes))

				var payload struct {
					SessionToken string `json:"session_token"`
				}
				if err := json.Unmarshal(bodyBytes, &payload); err == nil {
					token = payload.SessionToken
				}
			}
		}

		if token == "" {
			writeJSONError(w, http.StatusUnauthorized, "Session token missing")
			return
		}

		session, err := findSession.FindByToken(token)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, "an error occurred when validating session")
			return
		}

		if session == nil {
			writeJSONError(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}

		r.Header.Set(SessionEmailHeader, session.Email)
		r.Header.Set(SessionRoleHeader, session.Role)

		next.ServeHTTP(w, r)
	})
}

func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
