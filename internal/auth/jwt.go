package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v4"

	"marketplace-api/internal/models"
)

// Resolver resuelve la credencial bearer emitida por el colaborador de
// identidad en una identidad autenticada. El core no emite ni firma
// tokens, solo los verifica.
type Resolver interface {
	Resolve(token string) (models.Identity, error)
}

// Claims son los claims que el colaborador incluye en el token
type Claims struct {
	UserID    int64  `json:"userId"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	jwt.RegisteredClaims
}

// JWTResolver verifica tokens HS256 con el secreto compartido
type JWTResolver struct {
	secret []byte
}

func NewJWTResolver(secret string) *JWTResolver {
	return &JWTResolver{secret: []byte(secret)}
}

func (r *JWTResolver) Resolve(tokenString string) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return r.secret, nil
	})
	if err != nil {
		return models.Identity{}, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Identity{}, errors.New("invalid token")
	}

	return models.Identity{
		UserID:    claims.UserID,
		Role:      claims.Role,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
	}, nil
}
