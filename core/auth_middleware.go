package core

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/putto11262002/schedly/pkg/router"
)

const key sessionKey = "session"

type sessionKey = string

func contextWithSession(ctx context.Context, session Session) context.Context {
	return context.WithValue(ctx, key, session)
}

func sessionFromContext(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(key).(Session)
	return session, ok
}

// SessionFromRequest extracts the session from the request context.
// It must be called in handlers that are protected by the JWTMiddleware.
// It panics if the session is not found in the request context.
func SessionFromRequest(r *http.Request) Session {
	session, ok := sessionFromContext(r.Context())
	if !ok {
		panic("session not found in request context: call this function in handlers that are protected by JWTMiddleware")
	}
	return session
}

// bearerToken extracts the token segment from an Authorization header of the
// form "Bearer <token>". The scheme word is not checked; a wrong scheme still
// yields a token that fails verification.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	_, token, ok := strings.Cut(header, " ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// JWTMiddleware extracts the bearer token from the Authorization header,
// validates it and attaches the session to the request context.
// The session is gaurenteed to be attached to the request context if the
// token is valid for subsequent handlers.
func JWTMiddleware(a Auth) router.Middleware {

	return func(next http.Handler) router.HandlerFunc {

		noTokenErr := router.NewJsonError(http.StatusUnauthorized, "Unauthorized: No token provided")
		invalidTokenErr := router.NewJsonError(http.StatusUnauthorized, "Unauthorized: Invalid token")

		return router.HandlerFunc(func(w http.ResponseWriter, r *http.Request) error {
			ctx := r.Context()

			token, ok := bearerToken(r)
			if !ok {
				return noTokenErr
			}

			session, err := a.Session(ctx, token)
			if err != nil {
				if errors.Is(err, ErrUnauthenticated) {
					return invalidTokenErr
				}
				return err
			}

			next.ServeHTTP(w, r.WithContext(contextWithSession(ctx, *session)))

			return nil
		})
	}
}
