// internal/model/user.go
package model

// User is a registered account. Email is unique by equality scan.
// PasswordHash is a bcrypt hash; it is persisted but never serialized
// back to API clients (handlers convert to a response DTO).
type User struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"password_hash"`
}
