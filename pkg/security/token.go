package security

import (
	"crypto/rsa"
	"errors"
	"fmt"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/samandr77/microservices/access/internal/entity"
)

// TokenValidator checks access tokens issued by the auth service.
type TokenValidator struct {
	publicKey *rsa.PublicKey
}

func NewTokenValidator(publicKey *rsa.PublicKey) *TokenValidator {
	return &TokenValidator{publicKey: publicKey}
}

func (v *TokenValidator) Validate(accessToken string) (entity.UserJwtInfo, error) {
	var claims entity.UserJwtClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return v.publicKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.UserJwtInfo{}, fmt.Errorf("token expired: %w", entity.ErrTokenExpired)
		}

		return entity.UserJwtInfo{}, fmt.Errorf("parse access token: %w: %w", entity.ErrInvalidToken, err)
	}

	if !token.Valid {
		return entity.UserJwtInfo{}, fmt.Errorf("invalid access token: %w", entity.ErrInvalidToken)
	}

	if claims.User.ID.IsNil() {
		return entity.UserJwtInfo{}, fmt.Errorf("access token missing user id: %w", entity.ErrInvalidToken)
	}

	return claims.User, nil
}
