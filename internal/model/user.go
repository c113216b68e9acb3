package model

// User represents a staff account as stored in the `users` table.
// Accounts are provisioned out-of-band; the service only ever reads
// them during login.
//
// Fields:
//  ID           – users.user_id, primary key.
//  Username     – unique login name.
//  PasswordHash – bcrypt hash of the password.
type User struct {
	ID           uint64 // users.user_id
	Username     string // users.username
	PasswordHash string // users.password_hash
}
