package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the logged-in employee's identity. The subject is the DNI,
// so handlers never need a client-supplied employee id.
type Claims struct {
	Role     string `json:"role"`
	FullName string `json:"employee_complete_name"`
	jwt.RegisteredClaims
}

// UserContext is the parsed identity attached to authenticated requests.
type UserContext struct {
	DNI      int
	Role     string
	FullName string
}

func GenerateToken(secret string, dni int, role, fullName string, ttl time.Duration) (string, error) {
	claims := Claims{
		Role:     role,
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(dni),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (UserContext, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return UserContext{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return UserContext{}, errors.New("invalid token")
	}
	dni, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return UserContext{}, errors.New("invalid token subject")
	}
	if !ValidRole(claims.Role) {
		return UserContext{}, errors.New("invalid token role")
	}
	return UserContext{DNI: dni, Role: claims.Role, FullName: claims.FullName}, nil
}
