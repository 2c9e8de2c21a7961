package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtKey is the secret used to sign tokens.
// In a production environment, this should be loaded from an environment variable or a secret manager.
var jwtKey = []byte("my_strong_and_long_secret_key_2026")

// CustomClaims defines the structure of the data stored inside the JWT.
// Login is the user's chat signature; every routed message is stamped from
// it, never from a client-supplied sender field.
type CustomClaims struct {
	UserID string   `json:"user_id"`
	Login  string   `json:"login"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a specific user.
func GenerateToken(userID, login string, roles []string,
	authTokenDuration time.Duration) (string, error) {
	expirationTime := time.Now().Add(authTokenDuration)

	claims := &CustomClaims{
		UserID: userID,
		Login:  login,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "moonlight",
		},
	}

	// HS256 (HMAC with SHA256) with the server's secret key.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken parses and validates the signature and expiration of a JWT string.
func ValidateToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}
