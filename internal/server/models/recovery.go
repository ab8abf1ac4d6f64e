package models

import "time"

// RecoveryRequest is an append-only audit row created when a user asks to
// recover a forgotten password. Requests are resolved manually by an
// administrator; rows are never updated or deleted.
type RecoveryRequest struct {
	ID               string
	TargetEmail      string
	Identifier       string
	RevealedPassword string
	CreatedAt        time.Time
}
