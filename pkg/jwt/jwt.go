// Package jwt firma el valor de la cookie de sesión.
// La cookie transporta el token opaco de sesión dentro de un JWT HS256: una cookie alterada
// se rechaza sin consultar el almacén. La validez real de la sesión la decide siempre el servidor.
package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims del sobre de la cookie. ID (jti) es el token de sesión.
type Claims struct {
	jwt.RegisteredClaims
}

// SignSession envuelve sessionToken en un JWT firmado que expira en expiresAt.
func SignSession(secret, issuer, sessionToken string, expiresAt time.Time) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if sessionToken == "" {
		return "", fmt.Errorf("jwt: token de sesión vacío")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionToken,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSession valida firma, emisor y expiración y devuelve el token de sesión.
func ParseSession(secret, issuer, value string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	token, err := jwt.ParseWithClaims(value, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return "", fmt.Errorf("claims inválidos")
	}
	return claims.ID, nil
}
