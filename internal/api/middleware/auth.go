package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-RehearsalBooking/internal/api/handlers"
)

const (
	// RoleAdmin значение claim role для доступа к админке
	RoleAdmin = "admin"

	keyUnauthorized = "unauthorized"
)

var errNotAdmin = errors.New("role is not admin")

// AdminClaims claims токена администратора
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type subjectKey struct{}

// SubjectFromContext subject проверенного токена администратора
func SubjectFromContext(ctx context.Context) string {
	sub, _ := ctx.Value(subjectKey{}).(string)
	return sub
}

// AdminAuth пропускает только запросы с Bearer JWT (HS256) и role=admin
// Если issuer не пустой, он тоже проверяется
func AdminAuth(secret, issuer string, t handlers.Translator, log Logger) func(http.Handler) http.Handler {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		options = append(options, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(options...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := parseAdminToken(parser, secret, r.Header.Get("Authorization"))
			if err != nil {
				log.Warn("AdminAuth: rejected request: path=%s, error=%v", r.URL.Path, err)
				handlers.RespondMessage(w, r, t, http.StatusUnauthorized, keyUnauthorized, nil)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey{}, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseAdminToken(parser *jwt.Parser, secret, header string) (*AdminClaims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return nil, errors.New("missing bearer token")
	}

	claims := &AdminClaims{}
	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims.Role != RoleAdmin {
		return nil, errNotAdmin
	}
	return claims, nil
}
