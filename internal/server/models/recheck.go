package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/uelms-project/uelms/internal/common"
)

// RecheckStatus is the review state of a result re-evaluation request.
type RecheckStatus string

const (
	RecheckPending  RecheckStatus = "Pending"
	RecheckApproved RecheckStatus = "Approved"
	RecheckRejected RecheckStatus = "Rejected"
)

// ParseRecheckStatus validates a status name supplied by an admin screen.
func ParseRecheckStatus(s string) (RecheckStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return RecheckPending, nil
	case "approved":
		return RecheckApproved, nil
	case "rejected":
		return RecheckRejected, nil
	default:
		return "", fmt.Errorf("%w: unknown recheck status %q", common.ErrorValidation, s)
	}
}

// RecheckRequest is a student's request to re-evaluate one exam result.
// At most one request exists per (registration no, subject, semester, year);
// resubmitting updates the reason and resets the status.
type RecheckRequest struct {
	RequestID      int64
	RegistrationNo string
	SubjectCode    string
	Semester       int
	ExamYear       int
	Reason         string
	Status         RecheckStatus
	RequestDate    time.Time
	AdminComment   string
}
