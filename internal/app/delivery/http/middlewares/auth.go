package middlewares

import (
	"context"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"
)

// Authenticate resolves the bearer token into a session and stores it on the
// request context. The token carries only the session ID; the session itself
// lives in Redis and is written by the identity provider.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		sessionData, err := m.SessionService.GetSessionData(ctx, sessionID)
		if err != nil {
			if err == context.DeadlineExceeded {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerDeadlineExceeded(err))
				return
			}
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(nil))
			return
		}

		session, err := m.SessionService.ParseSessionData(ctx, sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionInvalid(err))
			return
		}

		ctx = context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) RequirePatient(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := utils.SessionFromContext(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !session.IsPatient() || session.PatientID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) RequireDoctor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := utils.SessionFromContext(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if !session.IsDoctor() || session.DoctorID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
