package domain

import "time"

// User is an account record. PasswordHash is a bcrypt digest and never
// leaves the process.
type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash []byte
	Preferences  Preference
	CreatedAt    time.Time
}
