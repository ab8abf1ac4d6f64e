// Package services contains server-side business logic. This file implements
// AuthService, the façade the UI screens call: registration, login,
// self-service password recovery, and the bootstrap admin seed.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uelms-project/uelms/internal/common"
	"github.com/uelms-project/uelms/internal/dbx"
	"github.com/uelms-project/uelms/internal/logging"
	"github.com/uelms-project/uelms/internal/server/config"
	"github.com/uelms-project/uelms/internal/server/models"
	"github.com/uelms-project/uelms/internal/server/repositories/repomanager"
)

// SchemaEnsurer guards schema initialization; every operation calls it
// defensively before touching the store.
type SchemaEnsurer interface {
	Ensure(ctx context.Context) error
}

// AuthService provides the account-lifecycle operations:
// - Register: create accounts with a fixed role
// - Login: verify credentials for an active account
// - RequestRecovery: log a password-recovery request for admin follow-up
// - SeedDefaultAdmin: guarantee at least one admin login exists
//
// The service is stateless between calls; each operation validates, ensures
// the schema, then performs its store work in the order listed.
type AuthService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	schema      SchemaEnsurer
	logger      logging.Logger
	notifyEmail string
	seedUser    string
	seedPass    string
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, schema SchemaEnsurer, cfg *config.Config, logger logging.Logger) *AuthService {
	return &AuthService{
		db:          db,
		repomanager: m,
		schema:      schema,
		logger:      logger,
		notifyEmail: cfg.AdminNotifyEmail,
		seedUser:    cfg.BootstrapAdminUser,
		seedPass:    cfg.BootstrapAdminPassword,
	}
}

// Register creates an active account after validating the input. The
// duplicate check and the insert run in one transaction; a constraint
// collision from a concurrent registration still maps to ErrorDuplicate.
func (s *AuthService) Register(ctx context.Context, username, password, confirm, roleName string) (*models.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}
	if password != confirm {
		return nil, fmt.Errorf("%w: passwords do not match", common.ErrorValidation)
	}
	role, err := models.ParseRole(roleName)
	if err != nil {
		return nil, err
	}

	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	account := &models.Account{Username: username, Password: password, Role: role, IsActive: true}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		taken, err := repo.Exists(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return common.ErrorDuplicate
		}

		account, err = repo.Create(ctx, account)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.logger.Info(ctx, "account registered", "username", username, "role", role)
	return account, nil
}

// Login verifies credentials against the active account matching identifier.
// roleHint, when non-empty, narrows the lookup to that role; the empty hint
// accepts any role, so a single login screen serves every portal. The result
// carries the account's stored role for the caller to route on.
//
// ErrorNotFound means no active account matched; ErrorUnauthorized means the
// account exists but the password is wrong.
func (s *AuthService) Login(ctx context.Context, identifier, password, roleHint string) (*models.Account, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || password == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", common.ErrorValidation)
	}

	var role models.Role
	if strings.TrimSpace(roleHint) != "" {
		parsed, err := models.ParseRole(roleHint)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	account, err := s.repomanager.Accounts(s.db).GetByIdentifier(ctx, identifier, role)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error looking up account: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(password)) != 1 {
		s.logger.Warn(ctx, "failed login attempt", "identifier", identifier)
		return nil, common.ErrorUnauthorized
	}

	s.logger.Info(ctx, "login succeeded", "identifier", identifier, "role", account.Role)
	return account, nil
}

// RequestRecovery looks up the active account's stored password and appends
// a recovery request addressed to the configured admin mailbox. Repeat
// requests all get their own row.
func (s *AuthService) RequestRecovery(ctx context.Context, identifier string) (*models.RecoveryRequest, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, fmt.Errorf("%w: identifier is required", common.ErrorValidation)
	}

	if err := s.schema.Ensure(ctx); err != nil {
		return nil, err
	}

	password, err := s.repomanager.Accounts(s.db).FindPasswordByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error looking up password: %w", err)
	}

	req := &models.RecoveryRequest{
		TargetEmail:      s.notifyEmail,
		Identifier:       identifier,
		RevealedPassword: password,
	}

	req, err = s.repomanager.Recovery(s.db).Record(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("error recording recovery request: %w", err)
	}

	s.logger.Info(ctx, "recovery request logged", "identifier", identifier, "request_id", req.ID)
	return req, nil
}

// UsernameTaken is the pre-check registration screens run while the user
// types; Register repeats it transactionally.
func (s *AuthService) UsernameTaken(ctx context.Context, username string) (bool, error) {
	if err := s.schema.Ensure(ctx); err != nil {
		return false, err
	}
	return s.repomanager.Accounts(s.db).Exists(ctx, strings.TrimSpace(username))
}

// SeedDefaultAdmin inserts the configured bootstrap admin unless an account
// with that username already exists. Losing the race to a concurrent seed
// counts as success.
func (s *AuthService) SeedDefaultAdmin(ctx context.Context) error {
	if err := s.schema.Ensure(ctx); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		taken, err := repo.Exists(ctx, s.seedUser)
		if err != nil {
			return err
		}
		if taken {
			return nil
		}

		_, err = repo.Create(ctx, &models.Account{
			Username: s.seedUser,
			Password: s.seedPass,
			Role:     models.RoleAdmin,
			IsActive: true,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicate) {
			return nil
		}
		return fmt.Errorf("error seeding default admin: %w", err)
	}

	return nil
}
