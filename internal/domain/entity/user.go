package entity

import "time"

// User is read-only here: registration and authentication are owned by the
// auth gate, this service only resolves profile data for emails and reviews.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Role      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
