package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims inclui os claims padrão JWT mais os campos que o provedor de
// identidade emite. A API não emite tokens em produção; só os valida.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Generate gera um token HS256 assinado. Em produção os tokens vêm do
// provedor de identidade; isto existe para testes e ambientes locais.
func Generate(secret, userID, email, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		Email: email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve o subject (ID do usuário) e o email.
// Retorna erro se o token é inválido, expirado ou com assinatura errada.
func Parse(secret, tokenString string) (userID, email string, err error) {
	if secret == "" {
		return "", "", fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", fmt.Errorf("claims inválidos")
	}
	return claims.Subject, claims.Email, nil
}
