package handlers

import (
	"log"
	"net/http"

	"github.com/rogerio-castellano/storefront/internal/auth"
	"github.com/rogerio-castellano/storefront/internal/session"
)

// SessionCookie carries the signed session id.
const SessionCookie = "storefront_session"

// currentSession resolves the caller's session from the signed cookie,
// creating a fresh session (and setting the cookie) when the cookie is
// missing or does not verify. First touch hydrates the session from the
// state store.
func currentSession(w http.ResponseWriter, r *http.Request) *session.Session {
	sid := ""
	if c, err := r.Cookie(SessionCookie); err == nil {
		sid = auth.SessionIDFromToken(c.Value)
	}

	if sid == "" {
		sid = session.NewID()
		token, err := auth.SignSessionID(sid)
		if err != nil {
			log.Printf("failed to sign session cookie: %v", err)
		} else {
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    token,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
	}

	return sessions.Get(r.Context(), sid)
}
