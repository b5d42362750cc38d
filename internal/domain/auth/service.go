package auth

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	Store     *Store
	JWTSecret string
	TokenTTL  time.Duration
}

func NewService(store *Store, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{Store: store, JWTSecret: jwtSecret, TokenTTL: tokenTTL}
}

type LoginResult struct {
	Token    string
	Role     string
	FullName string
}

// Login verifies the DNI/password pair and issues a signed token. Lookup and
// bcrypt failures collapse into ErrInvalidCredentials so the response never
// reveals whether the account exists.
func (s *Service) Login(ctx context.Context, dni int, password string) (LoginResult, error) {
	account, err := s.Store.GetAccount(ctx, dni)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := CheckPassword(account.PasswordHash, password); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	fullName, err := s.Store.EmployeeFullName(ctx, dni)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := GenerateToken(s.JWTSecret, dni, account.Role, fullName, s.TokenTTL)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Role: account.Role, FullName: fullName}, nil
}
