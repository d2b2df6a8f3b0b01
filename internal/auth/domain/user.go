package domain

import "time"

type User struct {
	ID                string
	Username          string
	Email             string
	EmailConfirmed    bool
	PasswordHash      string
	IsActive          bool
	TwoFactorEnabled  bool
	AccessFailedCount int
	LockoutEnd        *time.Time
	CreatedAt         time.Time
}

// LockedOutAt reports whether the store-level lockout is in effect at t.
func (u *User) LockedOutAt(t time.Time) bool {
	return u.LockoutEnd != nil && u.LockoutEnd.After(t)
}

type Role struct {
	ID   string
	Name string
}
