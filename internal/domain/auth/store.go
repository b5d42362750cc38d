package auth

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Account struct {
	DNI          int
	PasswordHash string
	Role         string
}

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) GetAccount(ctx context.Context, dni int) (*Account, error) {
	var account Account
	err := s.DB.QueryRow(ctx, `
    SELECT dni, password_hash, role
    FROM accounts
    WHERE dni = $1
  `, dni).Scan(&account.DNI, &account.PasswordHash, &account.Role)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *Store) EmployeeFullName(ctx context.Context, dni int) (string, error) {
	var firstName, lastName string
	err := s.DB.QueryRow(ctx, `
    SELECT first_name, last_name
    FROM employees
    WHERE dni = $1
  `, dni).Scan(&firstName, &lastName)
	if err != nil {
		return "", err
	}
	return firstName + " " + lastName, nil
}
