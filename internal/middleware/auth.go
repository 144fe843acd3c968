package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// имя cookie с auth-токеном
const authCookieName = "auth_token"

// время жизни cookie-токена
const authTokenTTL = 7 * 24 * time.Hour

type contextKey string

const userIDKey contextKey = "user_id"

// authClaims — полезная нагрузка cookie-токена.
type authClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// WithAuth разбирает auth cookie и кладёт user_id в контекст запроса.
// Отсутствующий или невалидный токен не прерывает запрос: пользователь
// просто остаётся анонимным, доступ маршруты не ограничивают.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(authCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims := &authClaims{}
			token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SetLoginCookie подписывает токен с user_id и ставит его в auth cookie.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	claims := &authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// GetUserIDFromContext возвращает user_id из контекста запроса, если
// пользователь аутентифицирован.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
