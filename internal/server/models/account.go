package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/uelms-project/uelms/internal/common"
)

// Role is the fixed portal role assigned to an account at registration.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleTeacher Role = "TEACHER"
	RoleStudent Role = "STUDENT"
)

// ParseRole normalizes and validates a user-supplied role name.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleStudent:
		return RoleStudent, nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", common.ErrorValidation, s)
	}
}

// Account is a row of the shared users table. Either Username or
// RegistrationNo (students only, empty otherwise) identifies the account.
//
// Password holds the stored credential verbatim; see the accounts
// repository notes on the plaintext contract.
type Account struct {
	ID             int64
	Username       string
	RegistrationNo string
	Password       string
	Role           Role
	IsActive       bool
	CreatedAt      time.Time
}

// DisplayName returns the identifier shown in UI flows: the registration
// number for students when present, the username otherwise.
func (a *Account) DisplayName() string {
	if a.RegistrationNo != "" {
		return a.RegistrationNo
	}
	return a.Username
}
