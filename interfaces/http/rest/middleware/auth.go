package middleware

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"aura-backend/pkg/auth"
	"aura-backend/pkg/common"
)

const (
	ipRequestsPerMinute   = 100
	userRequestsPerMinute = 200
)

// Authenticate validates the bearer token on every request and places the
// resulting user context on the request context. Rate limits are applied
// per IP before validation and per user after it.
func Authenticate(validator *auth.JWTValidator) func(next http.Handler) http.Handler {
	ipLimiter := auth.NewIPRateLimiter(ipRequestsPerMinute)
	userLimiter := auth.NewUserRateLimiter(userRequestsPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, _ := ipLimiter.Allow(r.Context(), clientIP(r))
			if !allowed {
				common.RespondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "Rate limit exceeded")
				return
			}

			token, err := bearerToken(r)
			if err != nil {
				common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrExpiredToken):
					common.RespondError(w, http.StatusUnauthorized, "TOKEN_EXPIRED", "Token has expired")
				case errors.Is(err, auth.ErrInvalidSignature):
					common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token signature")
				default:
					common.RespondError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
				}
				return
			}

			allowed, _ = userLimiter.Allow(r.Context(), claims.UserID)
			if !allowed {
				common.RespondError(w, http.StatusTooManyRequests, "RATE_LIMITED", "User rate limit exceeded")
				return
			}

			ctx := auth.SetUserInContext(r.Context(), &auth.UserContext{
				UserID: claims.UserID,
				Email:  claims.Email,
				Roles:  claims.Roles,
			})
			ctx = common.WithUserID(ctx, claims.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if idx := strings.IndexByte(forwarded, ','); idx > 0 {
			return strings.TrimSpace(forwarded[:idx])
		}
		return strings.TrimSpace(forwarded)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
