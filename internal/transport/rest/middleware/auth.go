package middleware

import (
	"context"
	"net/http"
	"strings"

	"praxis/internal/service"
)

type contextKey string

const CounselorIDKey contextKey = "counselorId"

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireCounselor validates the counselor JWT from the Authorization header
func (m *AuthMiddleware) RequireCounselor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), CounselorIDKey, claims.CounselorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCounselorID extracts the authenticated counselor id from the context
func GetCounselorID(ctx context.Context) string {
	if id, ok := ctx.Value(CounselorIDKey).(string); ok {
		return id
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
