package wanderlust

import (
	"strings"
	"time"
)

// A User is the core entity that interacts with a wanderlust application.
//
// An agent's HTTP requests are authenticated first by a specific request
// with username & password data matching credentials stored on a DB record for a User.
// Upon a match, a session naming the User is created and stored.
// Further requests are authenticated by referencing that session
// and re-reading the User from the store.
type User struct {
	ID           uint
	Username     string
	PasswordHash []byte
	WantToGo     []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetID returns the User's primary key.
func (u User) GetID() uint { return u.ID }

// GetUsername returns the User's unique username.
func (u User) GetUsername() string { return u.Username }

// HasAccess asserts whether the User's properties give it general
// access to the wanderlust application.
func (u User) HasAccess() bool {
	return u.ID != 0 && u.Username != ""
}

// HomePath returns the relative URL path designated
// as the default resource in the wanderlust application
// they can access.
func (u User) HomePath() string {
	if !u.HasAccess() {
		return "/login"
	}

	return "/home"
}

// WantsToGo asserts whether name is already on the User's want-to-go list.
func (u User) WantsToGo(name string) bool {
	for _, d := range u.WantToGo {
		if strings.EqualFold(d, name) {
			return true
		}
	}

	return false
}
