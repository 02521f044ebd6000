package middleware

import (
	"context"
	"net/http"

	"github.com/jarvis-home/eventlog/internal/api/apierr"
	"github.com/jarvis-home/eventlog/internal/auth"
	"github.com/jarvis-home/eventlog/internal/config"
	"github.com/jarvis-home/eventlog/internal/metrics"
	"github.com/rs/zerolog"
)

const grantKey contextKey = "grant"

// BasicAuth runs the credential gate once per request, before any handler.
// On success the grant rides the context for the rest of the request; on
// denial the request ends here with 401.
func BasicAuth(cfg config.Config) func(http.Handler) http.Handler {
	scope := auth.Scope{
		Region:  cfg.Deployment.Region,
		Account: cfg.Deployment.Account,
		API:     cfg.Deployment.API,
		Stage:   cfg.Deployment.Stage,
	}
	want := auth.Credentials{
		Username: cfg.Auth.Username,
		Password: cfg.Auth.Password,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			grant, err := auth.Authorize(r.Header.Get("Authorization"), scope, want)
			if err != nil {
				metrics.AuthFailuresTotal.Inc()
				w.Header().Set("WWW-Authenticate", `Basic realm="eventlog"`)
				apierr.Write(w, r, http.StatusUnauthorized, "unauthorized.")
				return
			}

			zerolog.Ctx(r.Context()).Debug().
				Str("principal", grant.PrincipalID).
				Str("resource", grant.Resource).
				Msg("authorized")
			next.ServeHTTP(w, r.WithContext(WithGrant(r.Context(), grant)))
		})
	}
}

func WithGrant(ctx context.Context, grant auth.Grant) context.Context {
	return context.WithValue(ctx, grantKey, grant)
}

// GrantFrom returns the grant attached by BasicAuth, if any.
func GrantFrom(r *http.Request) (auth.Grant, bool) {
	grant, ok := r.Context().Value(grantKey).(auth.Grant)
	return grant, ok
}
