package model

import "time"

// User is a registered account.
//
// PasswordHash holds the one-way bcrypt hash of the credential; the
// plaintext is never stored and the hash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the view of a user returned after a successful login.
// It carries identity only, never credentials or email.
type PublicUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Public returns the login view of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Username: u.Username,
	}
}
