package main

import (
	"errors"
	"net/http"

	"github.com/valeriy131100/star-burger/internal/repo"
	"github.com/valeriy131100/star-burger/internal/session"
)

const sessionCookieName = "session"

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

// managerOnly gates the back-office routes behind a staff session cookie.
func (app *application) managerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			app.unauthorizedResponse(w, r, errors.New("missing session cookie"))
			return
		}

		user, err := app.authService.Authenticate(r.Context(), cookie.Value)
		if err != nil {
			// a session whose user no longer exists is just as invalid
			// as an expired one
			if errors.Is(err, session.ErrNotFound) || errors.Is(err, repo.ErrNotFound) {
				app.unauthorizedResponse(w, r, err)
				return
			}
			app.internalServerError(w, r, err)
			return
		}

		if !user.IsStaff {
			app.forbiddenResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}
