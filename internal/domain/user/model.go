package user

import "time"

// User is the authenticated account owning brand profiles.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Session is what register and login hand back.
type Session struct {
	User  User
	Token string
}

// ResetTokenStatus is the answer to a password reset token check.
type ResetTokenStatus struct {
	Valid bool
	Email string
}
