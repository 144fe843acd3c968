package token

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer выпускает токены для пользователя. Коллаборатор опциональный:
// ни один маршрут не требует токена, вход работает и без него.
type Issuer interface {
	Issue(userID int64, email string) (string, error)
}

// JWTIssuer подписывает HS256-токены с subject и email пользователя.
type JWTIssuer struct {
	secret []byte
	expiry time.Duration
}

// NewJWTIssuer создаёт издатель токенов. expiry <= 0 — срок по умолчанию
// 7 дней.
func NewJWTIssuer(secret string, expiry time.Duration) *JWTIssuer {
	if expiry <= 0 {
		expiry = 7 * 24 * time.Hour
	}
	return &JWTIssuer{secret: []byte(secret), expiry: expiry}
}

func (i *JWTIssuer) Issue(userID int64, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   strconv.FormatInt(userID, 10),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(i.expiry).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}
