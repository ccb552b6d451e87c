package middlewares

import (
	"casalist-service/internal/app/models"
	"casalist-service/internal/pkg/constvars"
	"casalist-service/internal/pkg/exceptions"
	"casalist-service/internal/pkg/utils"
	"context"
	"net/http"
	"strings"
)

// Authenticate requires a valid bearer token backed by a live session.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.log, w, err)
			return
		}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate attaches the session when a valid token is supplied
// and lets anonymous requests through untouched.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}

	sessionID, err := utils.ParseSessionIDFromJWT(tokenString, m.internalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	sessionData, err := m.sessionService.GetSessionData(r.Context(), sessionID)
	if err != nil {
		return nil, err
	}
	return m.sessionService.ParseSessionData(r.Context(), sessionData)
}
