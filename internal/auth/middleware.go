package auth

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	httperrors "officina/internal/errors"
)

// AdminAuthMiddleware guards the admin endpoints: requests must carry a
// Bearer JWT signed with JWT_SECRET (HS256), as issued by the admin login.
func AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			httperrors.ErrUnauthorized("Missing bearer token").WriteJSON(w)
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			httperrors.ErrUnauthorized("Auth not configured").WriteJSON(w)
			return
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			httperrors.ErrUnauthorized("Invalid token").WriteJSON(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
