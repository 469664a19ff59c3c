package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Auth issues and verifies the stateless access tokens. Tokens are HMAC-signed
// and carry only the subject email and an absolute expiry; there is no
// server-side revocation before expiry.
type Auth struct {
	Secret string
	TTL    time.Duration
}

func SetupAuth(secret string, ttlMinutes int) Auth {
	return Auth{
		Secret: secret,
		TTL:    time.Duration(ttlMinutes) * time.Minute,
	}
}

func (a Auth) GenerateToken(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("missing subject for token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": now.Add(a.TTL).Unix(),
		"iat": now.Unix(),
	})

	tokenStr, err := token.SignedString([]byte(a.Secret))
	if err != nil {
		return "", errors.New("unable to sign the token")
	}
	return tokenStr, nil
}

// VerifyToken accepts either a raw token or an "Authorization: Bearer x"
// header value and returns the subject on success.
func (a Auth) VerifyToken(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", errors.New("missing token")
	}

	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		parts := strings.SplitN(tokenString, " ", 2)
		if len(parts) != 2 || strings.TrimSpace(parts[1]) == "" {
			return "", errors.New("invalid token format")
		}
		tokenString = strings.TrimSpace(parts[1])
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("missing token subject")
	}
	return subject, nil
}
