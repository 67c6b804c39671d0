package tokens

import (
	"time"

	"github.com/acmehq/invoicehub/db/models"
	"github.com/golang-jwt/jwt"
)

type jwtCustomClaims struct {
	ID        int64 `json:"id"`
	IsRefresh bool  `json:"isRefresh"`

	jwt.StandardClaims
}

// GenerateAccessToken : Generate Access Token
func GenerateAccessToken(secret []byte, expiryInSeconds int, u *models.User) (string, error) {
	return generateToken(secret, expiryInSeconds, u, false)
}

// GenerateRefreshToken : Generate Refresh Token
func GenerateRefreshToken(secret []byte, expiryInSeconds int, u *models.User) (string, error) {
	return generateToken(secret, expiryInSeconds, u, true)
}

func generateToken(secret []byte, expiryInSeconds int, u *models.User, isRefresh bool) (string, error) {
	claims := &jwtCustomClaims{
		ID:        u.ID,
		IsRefresh: isRefresh,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Duration(expiryInSeconds) * time.Second).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	t, err := token.SignedString(secret)
	if err != nil {
		return "", err
	}
	return t, nil
}

// ParseToken verifies the signature and expiry of a token and returns the
// user id it was issued for. refresh selects which token kind is accepted.
func ParseToken(secret []byte, tokenString string, refresh bool) (int64, error) {
	claims := &jwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.NewValidationError("unexpected signing method", jwt.ValidationErrorSignatureInvalid)
		}
		return secret, nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid || claims.IsRefresh != refresh {
		return 0, jwt.NewValidationError("invalid token", jwt.ValidationErrorClaimsInvalid)
	}
	return claims.ID, nil
}
