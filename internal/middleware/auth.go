package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/learnaura/feedgate/shared/api"
	"github.com/learnaura/feedgate/shared/domain"
	"github.com/learnaura/feedgate/shared/jwt"
	"github.com/learnaura/feedgate/shared/logger"
)

// Key to store the credential in the request context
type key int

const credentialKey key = 0

// Auth holds dependencies for bearer authentication middleware.
type Auth struct {
	jwtService jwt.JwtService
}

func NewAuth(jwtService jwt.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth returns middleware that requires a valid platform bearer token
// and puts the resulting Credential into the request context.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cred, err := a.extractCredential(r)
			if err != nil {
				writeUnauthorized(w, err.Error())
				return
			}
			ctx := context.WithValue(r.Context(), credentialKey, cred)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractCredential(r *http.Request) (domain.Credential, error) {
	token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || token == "" {
		return domain.Credential{}, errNoToken
	}

	user, err := a.jwtService.DecodeUser(token)
	if err != nil {
		logger.Log.Debug("bearer token rejected", "component", "auth", "error", err)
		return domain.Credential{}, err
	}

	return domain.Credential{Token: token, User: user}, nil
}

// GetCredential returns the credential stored by NeedAuth, or the zero
// credential when the route ran without it.
func GetCredential(r *http.Request) domain.Credential {
	cred, _ := r.Context().Value(credentialKey).(domain.Credential)
	return cred
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(api.ErrorResponse{Message: message})
}

var errNoToken = &noTokenError{}

type noTokenError struct{}

func (e *noTokenError) Error() string { return "missing bearer token" }
