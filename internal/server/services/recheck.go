package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uelms-project/uelms/internal/common"
	"github.com/uelms-project/uelms/internal/logging"
	"github.com/uelms-project/uelms/internal/server/models"
	"github.com/uelms-project/uelms/internal/server/repositories/repomanager"
)

// RecheckService handles result re-evaluation requests: students submit and
// track them, admins review pending ones and record decisions.
type RecheckService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	schema      SchemaEnsurer
	logger      logging.Logger
}

func NewRecheckService(db *sql.DB, m repomanager.RepositoryManager, schema SchemaEnsurer, logger logging.Logger) *RecheckService {
	return &RecheckService{db: db, repomanager: m, schema: schema, logger: logger}
}

// Submit files (or refiles) a recheck request. Resubmitting the same
// subject/semester/year replaces the reason and resets the status to
// Pending, discarding any earlier decision.
func (s *RecheckService) Submit(ctx context.Context, registrationNo, subjectCode string, semester, examYear int, reason string) (*models.RecheckRequest, error) {
	registrationNo = strings.TrimSpace(registrationNo)
	subjectCode = strings.TrimSpace(subjectCode)
	if registrationNo == "" || subjectCode == "" {
		return nil, fmt.Errorf("%w: registration no and subject code are required", common.ErrorValidation)
	}
	if semester < 1 || semester > 12 {
		return nil, fmt.Errorf("%w: semester %d out of range", common.ErrorValidation, semester)
	}
	if examYear < 1900 {
		return nil, fmt.Errorf("%w: exam year %d out of range", common.ErrorValidation, examYear)
	}

	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	req := &models.RecheckRequest{
		RegistrationNo: registrationNo,
		SubjectCode:    subjectCode,
		Semester:       semester,
		ExamYear:       examYear,
		Reason:         strings.TrimSpace(reason),
	}

	req, err := s.repomanager.Rechecks(s.db).Submit(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error submitting recheck request: %w", err)
	}

	s.logger.Info(ctx, "recheck request submitted",
		"registration_no", registrationNo, "subject_code", subjectCode, "request_id", req.RequestID)
	return req, nil
}

// ForStudent lists a student's requests, newest first.
func (s *RecheckService) ForStudent(ctx context.Context, registrationNo string) ([]*models.RecheckRequest, error) {
	registrationNo = strings.TrimSpace(registrationNo)
	if registrationNo == "" {
		return nil, fmt.Errorf("%w: registration no is required", common.ErrorValidation)
	}

	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	return s.repomanager.Rechecks(s.db).ForStudent(ctx, registrationNo)
}

// PendingForReview lists the requests awaiting an admin decision.
func (s *RecheckService) PendingForReview(ctx context.Context) ([]*models.RecheckRequest, error) {
	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	return s.repomanager.Rechecks(s.db).ByStatuses(ctx, models.RecheckPending)
}

// Decide records an admin decision on a pending request. Only Approved and
// Rejected are valid decisions; an unknown request id yields ErrorNotFound.
func (s *RecheckService) Decide(ctx context.Context, requestID int64, statusName, comment string) error {
	status, err := models.ParseRecheckStatus(statusName)
	if err != nil {
		return err
	}
	if status == models.RecheckPending {
		return fmt.Errorf("%w: decision must be Approved or Rejected", common.ErrorValidation)
	}

	if err := s.schema.Ensure(ctx); err != nil {
		return err
	}

	if err := s.repomanager.Rechecks(s.db).Decide(ctx, requestID, status, strings.TrimSpace(comment)); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error recording decision: %w", err)
	}

	s.logger.Info(ctx, "recheck decision recorded", "request_id", requestID, "status", status)
	return nil
}
