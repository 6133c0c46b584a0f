package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims inclui os claims padrão JWT mais o retrato da sessão autenticada.
// IsAdmin e Modules viajam no token para que o middleware de módulos decida
// sem consultar o banco — e é exatamente isso que congela o conjunto de
// permissões no momento do login: alterações feitas depois só valem num
// novo login.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64    `json:"user_id"`
	CompanyID int64    `json:"company_id"`
	IsAdmin   bool     `json:"is_admin"`
	Modules   []string `json:"modules"`
}

// Generate gera um token JWT assinado com o retrato da sessão.
func Generate(secret string, userID, companyID int64, isAdmin bool, modules []string, issuer string, expMinutes int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vazio")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		UserID:    userID,
		CompanyID: companyID,
		IsAdmin:   isAdmin,
		Modules:   modules,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida o token e devolve os claims da sessão.
// Retorna erro se o token for inválido, expirado ou de assinatura incorreta.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vazio")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
