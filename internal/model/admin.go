package model

// Admin is the single privileged account. The password hash never leaves
// the server, hence json:"-".
type Admin struct {
	ID           int    `db:"id" json:"id"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
}
