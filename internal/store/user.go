package store

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/ganbold/surveyd/internal/model"
)

// CreateUser inserts a new user.
func (s *Store) CreateUser(u model.User) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO user_information (account_name, password_hash, surname, firstname, gender, email, registerid, country, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.Surname, u.Firstname, u.Gender, u.Email, u.RegisterID, u.Country, time.Now(),
	)
	if err != nil {
		slog.Error("failed to create user", "username", u.Username, "error", err)
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	slog.Info("created user", "id", id, "username", u.Username)
	return id, nil
}

// GetUserByUsername returns a user by account name, or nil if absent.
func (s *Store) GetUserByUsername(username string) (*model.User, error) {
	return s.getUserWhere(`account_name = ?`, username)
}

// GetUserByEmail returns a user by email, or nil if absent.
func (s *Store) GetUserByEmail(email string) (*model.User, error) {
	return s.getUserWhere(`email = ?`, email)
}

// GetUserByRegisterID returns a user by national register ID, or nil if absent.
func (s *Store) GetUserByRegisterID(registerID string) (*model.User, error) {
	return s.getUserWhere(`registerid = ?`, registerID)
}

// GetUserByID returns a user by primary key, or nil if absent.
func (s *Store) GetUserByID(id int64) (*model.User, error) {
	return s.getUserWhere(`user_id = ?`, id)
}

func (s *Store) getUserWhere(cond string, arg any) (*model.User, error) {
	var u model.User
	err := s.db.QueryRow(
		`SELECT user_id, account_name, password_hash, surname, firstname, gender, email, registerid, country, created_at
		 FROM user_information WHERE `+cond, arg,
	).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Surname, &u.Firstname, &u.Gender, &u.Email, &u.RegisterID, &u.Country, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ListUsers returns all users ordered by ID.
func (s *Store) ListUsers() ([]model.User, error) {
	rows, err := s.db.Query(
		`SELECT user_id, account_name, password_hash, surname, firstname, gender, email, registerid, country, created_at
		 FROM user_information ORDER BY user_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Surname, &u.Firstname, &u.Gender, &u.Email, &u.RegisterID, &u.Country, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// UserCount returns the total number of users.
func (s *Store) UserCount() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM user_information`).Scan(&count)
	return count, err
}
