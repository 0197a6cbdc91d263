package state

import (
	"fmt"
	"strings"
)

// Role gates which launcher entries a user can see.
type Role string

const (
	RoleGuest Role = "guest"
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole accepts guest, user or admin in any case. Empty means guest.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(RoleGuest):
		return RoleGuest, nil
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return RoleGuest, fmt.Errorf("unknown role %q (want guest, user or admin)", s)
	}
}

// User identifies who is sitting at the desktop.
type User struct {
	Name string
	Role Role
}

// SignedIn reports whether the user has an identity beyond guest.
func (u User) SignedIn() bool {
	return strings.TrimSpace(u.Name) != "" && u.Role != RoleGuest
}

// DisplayName returns the name shown in the taskbar tray.
func (u User) DisplayName() string {
	if strings.TrimSpace(u.Name) == "" {
		return "Guest"
	}
	return u.Name
}

type SessionStore interface {
	User() User
	SetUser(User)
	SignedIn() bool
}

type sessionStore struct {
	user User
}

func NewSessionStore() SessionStore {
	return &sessionStore{user: User{Role: RoleGuest}}
}

func (s *sessionStore) User() User {
	return s.user
}

func (s *sessionStore) SetUser(u User) {
	if u.Role == "" {
		u.Role = RoleUser
		if strings.TrimSpace(u.Name) == "" {
			u.Role = RoleGuest
		}
	}
	s.user = u
}

func (s *sessionStore) SignedIn() bool {
	return s.user.SignedIn()
}
